package natsinfo

import (
	"strings"

	nats "github.com/nats-io/nats.go"
)

const PAGES_STREAM_ANY_SNAPSHOT_SUBJECT = "page.*.*"

func PagesStream_NewSnapshotSubject(origin string, title string) string {
	title = strings.ReplaceAll(title, " ", "_")
	result := PAGES_STREAM_ANY_SNAPSHOT_SUBJECT
	result = strings.Replace(result, "*", origin, 1)
	result = strings.Replace(result, "*", title, 1)
	return result
}

var PAGES_STREAM_CONFIG = &nats.StreamConfig{
	Name:      "PAGES",
	Retention: nats.WorkQueuePolicy,
	Discard:   nats.DiscardOld,
	Subjects:  []string{PAGES_STREAM_ANY_SNAPSHOT_SUBJECT},
}

func PagesStream_NewSnapshotConsumerConfig(queueGroup string) (stream string, subject string, subOpts []nats.SubOpt, config *nats.ConsumerConfig) {
	stream = PAGES_STREAM_CONFIG.Name
	subject = PAGES_STREAM_ANY_SNAPSHOT_SUBJECT
	config = &nats.ConsumerConfig{
		Durable:        queueGroup,
		DeliverSubject: queueGroup + ".deliver",
		DeliverGroup:   queueGroup,
		AckPolicy:      nats.AckExplicitPolicy,
		FilterSubject:  PAGES_STREAM_ANY_SNAPSHOT_SUBJECT,
	}
	subOpts = []nats.SubOpt{
		nats.ManualAck(),
		nats.Bind(stream, queueGroup),
	}
	return stream, subject, subOpts, config
}
