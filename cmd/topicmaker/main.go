package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/niksmo/aqua-plant/config"
	"github.com/niksmo/aqua-plant/internal/adapter"
	"github.com/niksmo/aqua-plant/pkg/sigctx"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	partitions        = 3
	replicationFactor = 3
	cleanupDelete     = "delete"
	retentionMs       = "604800000" // 7 days
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	if !cfg.BrokerEnabled() {
		printFail(errors.New("broker.seed_brokers is empty"))
		return
	}

	cl := createClient(cfg)
	defer cl.Close()

	topic := cfg.Broker.Topics.CartEvents
	printStart(topic)
	defer printComplete(time.Now())

	if err := makeTopics(sigCtx, cl, topic); err != nil {
		printFail(err)
		return
	}
}

func createClient(cfg config.Config) *kadm.Client {
	opts := []kgo.Opt{kgo.SeedBrokers(cfg.Broker.SeedBrokers...)}

	if cfg.TLSEnabled() {
		t := cfg.Broker.TLS
		tlsConfig, err := adapter.BrokerTLSConfig(t.CA, t.Cert, t.Key)
		if err != nil {
			panic(err) // develop mistake
		}
		opts = append(opts, kgo.DialTLSConfig(tlsConfig))
	}

	cl, err := kadm.NewOptClient(opts...)
	if err != nil {
		panic(err) // develop mistake
	}
	return cl
}

// Cart events are an append-only activity stream, hence delete with a
// bounded retention.
func makeTopics(
	ctx context.Context, cl *kadm.Client, topics ...string,
) error {
	var (
		minISR        = "2"
		cleanupPolicy = cleanupDelete
		retention     = retentionMs
	)

	config := map[string]*string{
		"cleanup.policy":      &cleanupPolicy,
		"min.insync.replicas": &minISR,
		"retention.ms":        &retention,
	}

	responses, err := cl.CreateTopics(
		ctx,
		partitions,
		replicationFactor,
		config,
		topics...,
	)

	if err != nil {
		return err
	}

	var errs []error
	for _, res := range responses.Sorted() {
		err := res.Err
		if err != nil {
			if errors.Is(res.Err, kerr.TopicAlreadyExists) {
				fmt.Printf("topic: %q already exists\n", res.Topic)
			} else {
				errs = append(errs, err)
			}
			continue
		}
		fmt.Printf("topic: %q successfully created\n", res.Topic)
	}

	return errors.Join(errs...)
}

func printStart(topics ...string) {
	fmt.Println("initializing topics...")
	for _, t := range topics {
		fmt.Printf("\t- %q\n", t)
	}
	fmt.Println()
}

func printComplete(start time.Time) {
	fmt.Printf("\ncomplete in %s\n", time.Since(start))
}

func printFail(err error) {
	fmt.Printf("failed to create topics: \n%s\n", err)
}
