package natsinfo

import (
	"time"

	nats "github.com/nats-io/nats.go"
)

var (
	PAGE_COUNT_BUCKET_NAME      = "pages"
	PAGE_COUNT_KEY_VALUE_CONFIG = nats.KeyValueConfig{
		Bucket: PAGE_COUNT_BUCKET_NAME,
		TTL:    time.Minute * 2,
	}
)
