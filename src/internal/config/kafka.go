package config

import (
	"fmt"

	"fleet-service/src/pkg/kafka"
	"fleet-service/src/pkg/log"

	"github.com/spf13/viper"
)

// NewKafkaProducer returns nil when publishing is disabled; the messaging
// gateway treats a nil producer as a no-op.
func NewKafkaProducer(v *viper.Viper, logger log.Log) kafka.Producer {
	if !v.GetBool("kafka.producer.enabled") {
		logger.Info("kafka-config", "kafka producer is disabled in configuration", "kafka", "")
		return nil
	}

	producer, err := kafka.NewProducer(kafka.Cfg{
		Brokers:  v.GetString("kafka.brokers"),
		Username: v.GetString("kafka.username"),
		Password: v.GetString("kafka.password"),
		ClientID: v.GetString("app.name"),
	}, logger)
	if err != nil {
		logger.Error("kafka-config", fmt.Sprintf("failed to create producer: %v", err), "kafka", "")
		return nil
	}
	return producer
}
