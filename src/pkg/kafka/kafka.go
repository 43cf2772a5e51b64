package kafka

import (
	"strings"

	"fleet-service/src/pkg/log"

	"github.com/IBM/sarama"
)

// Producer publishes domain events. A nil Producer is valid and means
// publishing is disabled.
type Producer interface {
	Publish(topic string, key, value []byte) error
	Close() error
}

type Cfg struct {
	Brokers  string
	Username string
	Password string
	ClientID string
}

type producer struct {
	sync sarama.SyncProducer
	log  log.Log
}

// NewProducer builds a sarama sync producer. Sync keeps the request path
// simple: one publish, one error.
func NewProducer(cfg Cfg, logger log.Log) (Producer, error) {
	config := sarama.NewConfig()
	config.ClientID = cfg.ClientID
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Retry.Max = 3

	if cfg.Username != "" {
		config.Net.SASL.Enable = true
		config.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		config.Net.SASL.User = cfg.Username
		config.Net.SASL.Password = cfg.Password
	}

	sync, err := sarama.NewSyncProducer(strings.Split(cfg.Brokers, ","), config)
	if err != nil {
		return nil, err
	}
	return &producer{sync: sync, log: logger}, nil
}

func (p *producer) Publish(topic string, key, value []byte) error {
	_, _, err := p.sync.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		p.log.Error("kafka", "failed to publish message", topic, err.Error())
	}
	return err
}

func (p *producer) Close() error {
	return p.sync.Close()
}
