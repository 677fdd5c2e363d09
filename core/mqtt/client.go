package mqtt

// Publisher sends raw payloads to an MQTT topic.
type Publisher interface {
	// Publish sends payload to topic, retrying according to the client
	// configuration before giving up.
	Publish(topic string, payload []byte) error
}
