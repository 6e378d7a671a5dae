package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/inertial_pipeline/internal/config"
	"github.com/relabs-tech/inertial_pipeline/internal/pipeline"
)

// RunConsoleMQTT subscribes to the orientation topic and prints every
// report until interrupted.
func RunConsoleMQTT(cfg *config.Config) error {
	if cfg.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required for the console")
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDConsole)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: connected to MQTT broker at %s", cfg.MQTTBroker)

	token := client.Subscribe(cfg.TopicOrientation, 0, printReports(os.Stdout))
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicOrientation)

	// Wait for Ctrl+C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("console: shutting down")
	client.Disconnect(250)
	return nil
}

func printReports(w io.Writer) mqtt.MessageHandler {
	return func(_ mqtt.Client, msg mqtt.Message) {
		var r pipeline.Report
		if err := json.Unmarshal(msg.Payload(), &r); err != nil {
			log.Printf("console: report unmarshal error: %v", err)
			return
		}
		fmt.Fprint(w, pipeline.FormatReport(r))
	}
}
