package worker

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"time"

	nats "github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/okhrin/meta-tracker/backend/internal/service"
	"github.com/okhrin/meta-tracker/backend/internal/storage"
	"github.com/okhrin/meta-tracker/pkg/natsinfo"
)

type snapshotConsumerWorker struct {
	js          nats.JetStreamContext
	pageService *service.PageService
}

func (a *snapshotConsumerWorker) handler(ctx context.Context) func(msg *nats.Msg) {
	return func(msg *nats.Msg) {
		var snapshot natsinfo.PageSnapshot

		if err := snapshot.Unmarshal(msg.Data); err != nil {
			log.Printf("Unable deserialize %s snapshot payload. Err:%s", msg.Subject, err)
			_ = msg.Ack()
			return
		}

		pageID, err := a.pageService.GetPageIDByCanonicalURLAndOrigin(ctx, storage.GetPageIDByCanonicalURLAndOriginParams{
			CanonicalURL: snapshot.CanonicalURL,
			Origin:       snapshot.Origin,
		})
		if errors.Is(err, sql.ErrNoRows) {
			if pageID, err := a.pageService.NewPage(ctx, service.NewPageParams{
				Page: storage.NewPageParams{
					Title:        snapshot.Title,
					Description:  snapshot.Description,
					CanonicalURL: snapshot.CanonicalURL,
					Origin:       snapshot.Origin,
					PublishedAt:  snapshot.PublishedAt,
				},
				MainImageURL:      snapshot.MainImage,
				ContentImagesURLs: snapshot.ContentImages,
			}); err == nil {
				log.Printf("Created page %d.", pageID)
				_ = msg.Ack()
				return
			}
			log.Printf("Unable create page for URL:%s Origin:%s. Err:%s", snapshot.CanonicalURL, snapshot.Origin, err)
			return
		} else if err != nil {
			log.Printf("Unexpected database error for URL:%s Origin:%s. Err:%s", snapshot.CanonicalURL, snapshot.Origin, err)
			return
		}

		if err = a.pageService.UpdatePageSnapshot(ctx, storage.UpdatePageSnapshotParams{
			Title:       snapshot.Title,
			Description: snapshot.Description,
			UpdatedAt:   time.Now(),
			ID:          pageID,
		}); err != nil {
			log.Printf("Unable update page for URL:%s Origin:%s. Err:%s", snapshot.CanonicalURL, snapshot.Origin, err)
			return
		}
		log.Printf("Updated page %d snapshot.", pageID)
		_ = msg.Ack()
	}
}

func (a *snapshotConsumerWorker) start(ctx context.Context) {
	if _, err := natsinfo.CreateOrUpdateStream(a.js, natsinfo.PAGES_STREAM_CONFIG); err != nil {
		log.Panicf("unable set-up nats %s stream. Err:%s", natsinfo.PAGES_STREAM_CONFIG.Name, err)
		os.Exit(1)
	}

	queueGroup := "backend-pages-consumer"
	stream, subject, subOpts, config := natsinfo.PagesStream_NewSnapshotConsumerConfig(queueGroup)

	if _, err := natsinfo.CreateOrUpdateConsumer(a.js, stream, config); err != nil {
		log.Panicf("unable set-up nats %s consumer. Err:%s", queueGroup, err)
		os.Exit(1)
	}

	if _, err := a.js.QueueSubscribe(subject, queueGroup, a.handler(ctx), subOpts...); err != nil {
		log.Panicf("unable start nats %s consumer. Err:%s", queueGroup, err)
		os.Exit(1)
	}

	<-ctx.Done()
}

type StartSnapshotConsumerWorkerParams struct {
	fx.In

	JS          nats.JetStreamContext
	PageService *service.PageService
}

func StartSnapshotConsumerWorker(params StartSnapshotConsumerWorkerParams) {
	worker := &snapshotConsumerWorker{
		js:          params.JS,
		pageService: params.PageService,
	}
	go worker.start(context.Background())
}
