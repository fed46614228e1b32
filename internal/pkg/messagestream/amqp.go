package messagestream

import (
	"fmt"

	"reservation-service/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.uber.org/zap"
)

type Amqp struct {
	config amqp.Config
	logger watermill.LoggerAdapter
}

func NewAmqp(cfg *config.MessageStreamConfig, log *zap.Logger) *Amqp {
	uri := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
	return &Amqp{
		config: amqp.NewDurableQueueConfig(uri),
		logger: NewZapLoggerAdapter(log),
	}
}

// NewSubscriber returns a nil interface when the broker cannot be reached.
func (a *Amqp) NewSubscriber() (message.Subscriber, error) {
	sub, err := amqp.NewSubscriber(a.config, a.logger)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// NewPublisher returns a nil interface when the broker cannot be reached.
func (a *Amqp) NewPublisher() (message.Publisher, error) {
	pub, err := amqp.NewPublisher(a.config, a.logger)
	if err != nil {
		return nil, err
	}
	return pub, nil
}

func (a *Amqp) Logger() watermill.LoggerAdapter {
	return a.logger
}

// NewRouter wires a single consumer on topic. Handlers poison bad payloads
// themselves, the router only recovers panics.
func NewRouter(logger watermill.LoggerAdapter, handlerName, topic string, subscriber message.Subscriber, handlerFunc message.NoPublishHandlerFunc) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(middleware.Recoverer)
	router.AddNoPublisherHandler(handlerName, topic, subscriber, handlerFunc)

	return router, nil
}
