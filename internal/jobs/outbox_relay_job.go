package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// outboxRelayer is satisfied by commands.RelayOutboxCommandHandler.
type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob publishes pending order events every second.
type OutboxRelayJob struct {
	handler outboxRelayer
	cmd     commands.RelayOutboxCommand
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOutboxRelayJob creates a job relaying up to batchSize messages per run.
func NewOutboxRelayJob(handler outboxRelayer, batchSize int, logger *slog.Logger) (*OutboxRelayJob, error) {
	cmd, err := commands.NewRelayOutboxCommand(batchSize)
	if err != nil {
		return nil, err
	}

	return &OutboxRelayJob{
		handler: handler,
		cmd:     cmd,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With("component", "outbox_relay_job"),
	}, nil
}

// Start begins the outbox relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc("* * * * * *", j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Run relays a single batch.
func (j *OutboxRelayJob) Run() {
	ctx := context.Background()

	sent, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		return
	}
	if sent > 0 {
		j.logger.DebugContext(ctx, "Outbox messages relayed", "count", sent)
	}
}

// Stop stops the job and waits for a running batch to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
