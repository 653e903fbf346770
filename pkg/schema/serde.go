package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/hamba/avro/v2"
	"github.com/twmb/franz-go/pkg/sr"
)

var (
	ErrTooFewOpts = errors.New("too few options")
)

// A Serde frames values with the schema registry wire header: a zero magic
// byte followed by the big-endian schema id.
type Serde interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// A SchemaIdentifier returns the registry id of schemaText under subject.
type SchemaIdentifier interface {
	DetermineID(ctx context.Context, subject, schemaText string) (int, error)
}

// TopicValueSubject names the value subject of topic by the registry's
// default topic name strategy.
func TopicValueSubject(topic string) string {
	return topic + "-value"
}

type registryIdentifier struct {
	cl *sr.Client
}

// NewRegistryIdentifier returns a [SchemaIdentifier] that registers the
// schema, or finds the already registered one, in the schema registry.
func NewRegistryIdentifier(cl *sr.Client) SchemaIdentifier {
	return registryIdentifier{cl}
}

func (r registryIdentifier) DetermineID(
	ctx context.Context, subject, schemaText string,
) (int, error) {
	const op = "registryIdentifier.DetermineID"

	ss, err := r.cl.CreateSchema(ctx, subject, sr.Schema{
		Type:   sr.TypeAvro,
		Schema: schemaText,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return ss.ID, nil
}

type Opt func(*serdeOpts) error

type serdeOpts struct {
	subject string
	si      SchemaIdentifier
}

func SubjectOpt(subject string) Opt {
	return func(so *serdeOpts) error {
		if subject == "" {
			return errors.New("subject is empty string")
		}
		so.subject = subject
		return nil
	}
}

func SchemaIdentifierOpt(si SchemaIdentifier) Opt {
	return func(so *serdeOpts) error {
		if si == nil {
			return errors.New("schema identifier is nil")
		}
		so.si = si
		return nil
	}
}

// A definition pairs a schema text with the Go type it is registered for.
type definition struct {
	text    string
	example any
}

var cartEventV1 = definition{
	text:    CartEventSchemaTextV1,
	example: CartEventV1{},
}

// NewSerdeCartEventV1 requires both [SubjectOpt] and [SchemaIdentifierOpt].
func NewSerdeCartEventV1(ctx context.Context, opts ...Opt) (Serde, error) {
	const op = "NewSerdeCartEventV1"

	s, err := cartEventV1.serde(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func (d definition) serde(ctx context.Context, opts []Opt) (*sr.Serde, error) {
	if len(opts) != 2 {
		return nil, ErrTooFewOpts
	}

	var so serdeOpts
	for _, o := range opts {
		if err := o(&so); err != nil {
			return nil, err
		}
	}

	avroSchema, err := avro.Parse(d.text)
	if err != nil {
		return nil, err
	}

	id, err := so.si.DetermineID(ctx, so.subject, d.text)
	if err != nil {
		return nil, err
	}

	s := new(sr.Serde)
	s.Register(
		id,
		d.example,
		sr.EncodeFn(func(v any) ([]byte, error) {
			return avro.Marshal(avroSchema, v)
		}),
		sr.DecodeFn(func(data []byte, v any) error {
			return avro.Unmarshal(avroSchema, data, v)
		}),
	)
	return s, nil
}
