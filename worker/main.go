package main

import (
	"context"
	"flag"
	"sync"

	nats "github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/okhrin/meta-tracker/pkg/natsinfo"
	"github.com/okhrin/meta-tracker/worker/internal/pagetemplate"
)

// Feed configs come from the command line as JSON, one -feed flag per
// tracked feed:
//
//	worker -feed '{"feed_url":"https://example.com/feed","feed_item_selector":["feed-item"],...}'
var feedConfigs pagetemplate.ConfigFlag

func main() {
	flag.Var(&feedConfigs, "feed", "JSON config of a tracked feed. May be repeated.")
	flag.Parse()

	fx.New(
		fx.Provide(
			zap.NewProduction,

			natsinfo.NewNatsConfig,
			natsinfo.NewNatsConnection,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),

		fx.Invoke(func(logger *zap.Logger, conn *nats.Conn, js nats.JetStreamContext) error {
			if _, err := natsinfo.CreateOrUpdateStream(js, natsinfo.PAGES_STREAM_CONFIG); err != nil {
				return err
			}

			var wg sync.WaitGroup

			for _, config := range feedConfigs {
				feed := pagetemplate.NewFeedProcessor(config)
				go feed.Start(context.Background())

				wg.Add(1)
				go func() {
					defer wg.Done()
					for snapshot := range feed.GetSnapshotChan() {
						subject := natsinfo.PagesStream_NewSnapshotSubject(snapshot.Origin, snapshot.Title)
						if _, err := natsinfo.JsPublishJson(js, subject, &snapshot); err != nil {
							logger.Error("Unable publish snapshot", zap.String("subject", subject), zap.Error(err))
							continue
						}
						logger.Info("Published snapshot", zap.String("subject", subject))
					}
				}()
			}

			wg.Wait()
			return nil
		}),
	)
}
