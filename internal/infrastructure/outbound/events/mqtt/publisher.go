// Package mqtt_events publishes post change notifications to an MQTT broker as
// JSON messages on "{prefix}/{created|updated|deleted}".
package mqtt_events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"pinstack-blog-service/internal/custom_errors"
	model "pinstack-blog-service/internal/domain/models"
	ports "pinstack-blog-service/internal/domain/ports/output"
	"pinstack-blog-service/internal/domain/ports/output/events"
	"pinstack-blog-service/internal/infrastructure/config"
)

var _ events.PostEventPublisher = (*Publisher)(nil)

const (
	connectTimeout = 30 * time.Second
	publishTimeout = 5 * time.Second
	disconnectWait = 1000
)

type client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Disconnect(quiesce uint)
}

type Publisher struct {
	client      client
	topicPrefix string
	log         ports.Logger
}

func NewPublisher(cfg config.MQTT, log ports.Logger) (*Publisher, error) {
	if cfg.Broker == "" {
		return nil, errors.New("broker URL is required")
	}

	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "blog-" + uuid.NewString()
	}

	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetKeepAlive(60 * time.Second).
		SetCleanSession(true).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			log.Warn("MQTT connection lost", slog.String("error", err.Error()))
		})
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	c := paho.NewClient(opts)
	token := c.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, errors.New("connection timeout")
	}
	if token.Error() != nil {
		return nil, fmt.Errorf("connecting to broker: %w", token.Error())
	}

	log.Info("Connected to MQTT broker", slog.String("broker", cfg.Broker), slog.String("client_id", clientID))
	return newPublisher(c, cfg.TopicPrefix, log), nil
}

func newPublisher(c client, topicPrefix string, log ports.Logger) *Publisher {
	return &Publisher{
		client:      c,
		topicPrefix: topicPrefix,
		log:         log,
	}
}

func (p *Publisher) Publish(ctx context.Context, event model.PostEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", custom_errors.ErrEventPublish, err)
	}

	topic := p.topic(event.Type)
	token := p.client.Publish(topic, 0, false, payload)

	timeout := publishTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if !token.WaitTimeout(timeout) {
		return fmt.Errorf("%w: timeout publishing to %s", custom_errors.ErrEventPublish, topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", custom_errors.ErrEventPublish, err)
	}

	p.log.Debug("Published post event", slog.String("topic", topic), slog.Int64("post_id", event.PostID))
	return nil
}

func (p *Publisher) Close() error {
	p.client.Disconnect(disconnectWait)
	p.log.Info("MQTT connection closed")
	return nil
}

func (p *Publisher) topic(eventType model.PostEventType) string {
	return p.topicPrefix + "/" + string(eventType)
}
