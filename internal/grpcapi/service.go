// Package grpcapi exposes the scoring operations over gRPC. Messages are
// google.protobuf.Struct values carrying the same JSON shapes as the HTTP
// API, so no generated code is needed on either side.
package grpcapi

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/nyashahama/wellbeing-risk-engine/internal/chat"
	"github.com/nyashahama/wellbeing-risk-engine/internal/inference"
	"github.com/nyashahama/wellbeing-risk-engine/internal/instrument"
	"github.com/nyashahama/wellbeing-risk-engine/internal/metrics"
	"github.com/nyashahama/wellbeing-risk-engine/internal/risk"
	"github.com/nyashahama/wellbeing-risk-engine/internal/scoring"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "riskengine.v1.Scoring"

// scoringServer is the handler type registered with grpc.Server.
type scoringServer interface {
	Predict(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitQuestionnaire(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitWellbeing(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DetectSeverity(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// Service implements riskengine.v1.Scoring.
type Service struct {
	classifier inference.Classifier
	metrics    *metrics.Recorder
	logger     *slog.Logger
	now        func() time.Time
}

// NewService returns a Service. rec may be nil.
func NewService(classifier inference.Classifier, rec *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		classifier: classifier,
		metrics:    rec,
		logger:     logger,
		now:        time.Now,
	}
}

// Register attaches the service to gs.
func (s *Service) Register(gs grpc.ServiceRegistrar) {
	gs.RegisterService(&serviceDesc, s)
}

// ─── PREDICT ──────────────────────────────────────────────────────────────────

// Predict classifies a feature vector. Field violations are reported as
// InvalidArgument with every issue in the message.
func (s *Service) Predict(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var fin risk.FeaturesInput
	if err := decodeStruct(in, &fin); err != nil {
		return nil, err
	}

	f, err := fin.Features()
	if err != nil {
		var verr *risk.ValidationError
		if errors.As(err, &verr) {
			return nil, status.Error(codes.InvalidArgument, verr.Error())
		}
		return nil, s.internal(ctx, err)
	}

	p, err := s.classifier.Classify(ctx, f)
	if err != nil {
		return nil, s.internal(ctx, err)
	}
	s.metrics.ObservePrediction(p.Level, string(p.Source))

	return encodeStruct(p.Response(s.now()))
}

// ─── INSTRUMENTS ──────────────────────────────────────────────────────────────

// SubmitQuestionnaire scores the 8-item check-in.
func (s *Service) SubmitQuestionnaire(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	def := instrument.CheckInV1
	res, err := s.score(in, def)
	if err != nil {
		return nil, err
	}
	return encodeStruct(res.CheckInSummary(def))
}

// SubmitWellbeing scores the sectioned wellbeing instrument.
func (s *Service) SubmitWellbeing(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	def := instrument.WellbeingV1
	res, err := s.score(in, def)
	if err != nil {
		return nil, err
	}
	return encodeStruct(res.WellbeingSummary(def))
}

func (s *Service) score(in *structpb.Struct, def instrument.Definition) (scoring.Result, error) {
	var sub scoring.Submission
	if err := decodeStruct(in, &sub); err != nil {
		return scoring.Result{}, err
	}
	res, err := sub.Score(def)
	if err != nil {
		return scoring.Result{}, status.Error(codes.InvalidArgument, err.Error())
	}

	s.metrics.ObserveAssessment(def.ID, res.Level, res.CrisisFlag)
	if res.CrisisFlag {
		s.logger.Warn("submission raised crisis flag",
			"instrument", def.ID,
			"version", def.Version,
			"transport", "grpc",
		)
	}
	return res, nil
}

// ─── CHAT ─────────────────────────────────────────────────────────────────────

type detectSeverityRequest struct {
	Content string `json:"content"`
}

type detectSeverityResponse struct {
	Severity risk.Level `json:"severity"`
}

// DetectSeverity classifies a single chat message. An empty message is Low.
func (s *Service) DetectSeverity(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req detectSeverityRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, err
	}
	sev := chat.DetectSeverity(strings.TrimSpace(req.Content))
	s.metrics.ObserveChat(sev)
	return encodeStruct(detectSeverityResponse{Severity: sev})
}

// internal logs err and returns an opaque Internal status.
func (s *Service) internal(ctx context.Context, err error) error {
	method, _ := grpc.Method(ctx)
	s.logger.Error("internal error", "error", err, "method", method)
	return status.Error(codes.Internal, "internal server error")
}
