package async

import (
	"fmt"
	"sync"

	"tower/packages/env"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	conn     *amqp.Connection
	connErr  error
	connOnce sync.Once
)

// Init dials RabbitMQ once per process using the RABBITMQ_* settings.
func Init() (*amqp.Connection, error) {
	connOnce.Do(func() {
		env.Load()
		if env.RabbitMQUser == "" || env.RabbitMQPassword == "" {
			connErr = fmt.Errorf("RABBITMQ_USER and RABBITMQ_PASSWORD must be set")
			return
		}
		conn, connErr = amqp.Dial(URL(env.RabbitMQUser, env.RabbitMQPassword, env.RabbitMQHost, env.RabbitMQPort))
	})
	return conn, connErr
}

func URL(user, password, host, port string) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", user, password, host, port)
}

func Cleanup() {
	if conn != nil {
		conn.Close()
	}
}
