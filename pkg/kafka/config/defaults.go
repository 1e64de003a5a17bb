package kafka_config

import "time"

const (
	DefaultProducerMaxAttempts  = 3
	DefaultProducerBatchTimeout = 10 * time.Millisecond
	DefaultProducerRequireAcks  = -1 // Require all replicas
	DefaultProducerCompression  = "snappy"
	DefaultProducerAsync        = false
	DefaultWriteTimeout         = 5 * time.Second
)
