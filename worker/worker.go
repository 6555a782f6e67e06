package worker

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"persona-service/config"
	"persona-service/metrics"
	"persona-service/model"
	"persona-service/service"

	"github.com/nats-io/nats.go"
)

const (
	subjectAnalyzeRequest = "persona.analyze.request"
	subjectAnalyzeResult  = "persona.analyze.result"
)

// Worker consumes queued persona analysis requests from NATS
// JetStream and publishes results when they finish.
type Worker struct {
	config   *config.Config
	js       nats.JetStreamContext
	analyzer *service.Analyzer
	sub      *nats.Subscription
}

func NewWorker(cfg *config.Config, nc *nats.Conn, analyzer *service.Analyzer) (*Worker, error) {
	js, err := nc.JetStream()
	if err != nil {
		return nil, err
	}

	if err := setupStreams(js); err != nil {
		return nil, err
	}

	return &Worker{
		config:   cfg,
		js:       js,
		analyzer: analyzer,
	}, nil
}

func (w *Worker) Start(ctx context.Context) error {
	sub, err := w.js.Subscribe(subjectAnalyzeRequest, w.handleAnalyzeRequest,
		nats.Durable("persona-workers"),
		nats.ManualAck(),
		nats.MaxAckPending(w.config.WorkerCount),
	)
	if err != nil {
		return err
	}
	w.sub = sub

	log.Printf("Persona worker started with %d max in-flight requests", w.config.WorkerCount)
	return nil
}

func (w *Worker) Stop() {
	if w.sub != nil {
		if err := w.sub.Drain(); err != nil {
			log.Printf("Failed to drain worker subscription: %v", err)
		}
	}
}

func (w *Worker) handleAnalyzeRequest(msg *nats.Msg) {
	var req model.AnalyzeRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		log.Printf("Failed to unmarshal analyze request: %v", err)
		msg.Nak()
		return
	}
	if req.Username == "" {
		log.Printf("Dropping analyze request without username: %s", string(msg.Data))
		msg.Term()
		return
	}

	log.Printf("Processing analyze request: %+v", req)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result := model.AnalyzeResult{
		Username:   req.Username,
		RequestID:  req.RequestID,
		AnalyzedAt: time.Now(),
	}

	_, report, err := w.analyzer.AnalyzeUserWithLimits(ctx, req.Username, req.PostLimit, req.CommentLimit)
	if err != nil {
		metrics.PersonaAnalysesTotal.WithLabelValues("error", "worker").Inc()
		log.Printf("Analysis failed for u/%s: %v", req.Username, err)
		result.Error = err.Error()
		w.publishResult(result)
		msg.Nak()
		return
	}

	metrics.PersonaAnalysesTotal.WithLabelValues("success", "worker").Inc()
	result.Success = true
	result.ReportFile = report.Filename
	w.publishResult(result)
	msg.Ack()
}

func (w *Worker) publishResult(result model.AnalyzeResult) {
	data, err := json.Marshal(result)
	if err != nil {
		log.Printf("Failed to marshal analyze result: %v", err)
		return
	}

	if _, err := w.js.Publish(subjectAnalyzeResult, data); err != nil {
		log.Printf("Failed to publish analyze result: %v", err)
	}
}

func setupStreams(js nats.JetStreamContext) error {
	_, err := js.AddStream(&nats.StreamConfig{
		Name:      "PERSONA_ANALYZE",
		Subjects:  []string{"persona.analyze.>"},
		Retention: nats.WorkQueuePolicy,
		MaxAge:    24 * time.Hour,
		Storage:   nats.FileStorage,
	})
	if err != nil && err != nats.ErrStreamNameAlreadyInUse {
		return err
	}

	log.Println("NATS streams configured successfully")
	return nil
}
