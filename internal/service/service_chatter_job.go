package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/models"
)

type chatterJob struct {
	channels ChannelService
	script   []chatterLine
	next     int

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewChatterJob creates a ChatterJob that posts the canned script through
// channels. The job is idle until Start is called.
func NewChatterJob(channels ChannelService, logger *logger.Logger) ChatterJob {
	return &chatterJob{
		channels: channels,
		script:   chatterScript,
		logger:   logger,
	}
}

// Start implements ChatterJob. It stops any previously running job, then
// launches a goroutine that posts the next script line every interval. A zero
// or negative interval leaves the job stopped. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *chatterJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	if interval <= 0 || len(j.script) == 0 {
		j.logger.Info().Msg("chatter disabled")
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.postNext(jobCtx)
			}
		}
	}()

	j.logger.Info().Dur("interval", interval).Msg("chatter started")
}

// Stop implements ChatterJob. It cancels the goroutine's context and blocks
// until the goroutine has exited. Safe to call when the job is not running.
func (j *chatterJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *chatterJob) postNext(ctx context.Context) {
	line := j.script[j.next%len(j.script)]
	j.next++

	_, err := j.channels.SendMessage(ctx, line.userID, models.ChannelTypeMessaging, line.channelID, models.Message{Text: line.text})
	if err != nil {
		j.logger.Err(err).
			Str("func", "chatterJob.postNext").
			Str("channel_id", line.channelID).
			Str("user_id", line.userID).
			Msg("error posting chatter message")
	}
}
