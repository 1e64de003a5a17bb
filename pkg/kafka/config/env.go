package kafka_config

const (
	// Comma separated; leave unset to disable publishing
	EnvKafkaBrokers = "KAFKA_BROKERS"

	EnvKafkaProducerMaxAttempts  = "KAFKA_PRODUCER_MAX_ATTEMPTS"
	EnvKafkaProducerBatchTimeout = "KAFKA_PRODUCER_BATCH_TIMEOUT"
	EnvKafkaProducerRequireAcks  = "KAFKA_PRODUCER_REQUIRE_ACKS"
	EnvKafkaProducerCompression  = "KAFKA_PRODUCER_COMPRESSION"
	EnvKafkaProducerAsync        = "KAFKA_PRODUCER_ASYNC"
	EnvKafkaWriteTimeout         = "KAFKA_WRITE_TIMEOUT"
)
