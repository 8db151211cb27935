package allowable

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"filings-gateway/internal/allowable/metrics"
	"filings-gateway/internal/allowable/ports"
	"filings-gateway/internal/entity"
	"filings-gateway/internal/filing"
	"filings-gateway/internal/flags"
	dErrors "filings-gateway/pkg/domain-errors"
	"filings-gateway/pkg/platform/audit"
	"filings-gateway/pkg/platform/sentinel"
	"filings-gateway/pkg/requestcontext"
)

// contextTimeout bounds the parallel context gathering per resolution.
const contextTimeout = 3 * time.Second

// Report is the result of resolving every action for one request.
type Report struct {
	BusinessID  string
	EvaluatedAt time.Time
	Outcomes    map[Action]Outcome
	// DraftCodes are the filing type codes already accumulated for the
	// business, so callers can render what is in progress alongside what
	// is permitted.
	DraftCodes []string
}

// Service resolves allowable actions. Decision context (business snapshot,
// draft filing data) is gathered in parallel; the decision itself is the pure
// table in rules.go.
type Service struct {
	businesses ports.BusinessReader
	drafts     ports.DraftReader
	gate       *flags.Gate

	audit   ports.AuditPort
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithAudit sets the audit publisher.
func WithAudit(a ports.AuditPort) Option {
	return func(s *Service) {
		s.audit = a
	}
}

// NewService creates the resolver service.
func NewService(businesses ports.BusinessReader, drafts ports.DraftReader, gate *flags.Gate, opts ...Option) (*Service, error) {
	if businesses == nil {
		return nil, fmt.Errorf("business reader is required")
	}
	if drafts == nil {
		return nil, fmt.Errorf("draft reader is required")
	}
	if gate == nil {
		return nil, fmt.Errorf("flag gate is required")
	}

	s := &Service{
		businesses: businesses,
		drafts:     drafts,
		gate:       gate,
		audit:      audit.NopPublisher{},
		logger:     slog.Default(),
		tracer:     otel.Tracer("filings-gateway/internal/allowable"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// gatheredContext is everything a resolution reads beyond the request itself.
type gatheredContext struct {
	business *entity.Business
	draft    []filing.Entry
}

// gather loads the business snapshot and draft entries in parallel. A missing
// business is not an error: the rules treat it as "no business loaded".
func (s *Service) gather(ctx context.Context, businessID string) (*gatheredContext, error) {
	ctx, cancel := context.WithTimeout(ctx, contextTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	gathered := &gatheredContext{}

	g.Go(func() error {
		start := time.Now()
		b, err := s.businesses.FindByIdentifier(ctx, businessID)
		s.metrics.ObserveContextLatency("business", time.Since(start))

		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "load business snapshot")
		}
		gathered.business = b
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		entries, err := s.drafts.Load(ctx, businessID)
		s.metrics.ObserveContextLatency("filing_data", time.Since(start))

		// Draft data only enriches the report; a load failure must not
		// block the decision.
		if err != nil {
			s.logger.DebugContext(ctx, "draft load failed",
				"business_id", businessID,
				"error", err,
			)
			return nil
		}
		gathered.draft = entries
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return gathered, nil
}

// Resolve evaluates every known action for the session's business context.
func (s *Service) Resolve(ctx context.Context, businessID string) (*Report, error) {
	ctx, span := s.tracer.Start(ctx, "allowable.Resolve",
		trace.WithAttributes(attribute.String("business.id", businessID)))
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.ObserveResolveLatency(time.Since(start))
	}()

	in, draft, err := s.buildInput(ctx, businessID)
	if err != nil {
		return nil, err
	}

	outcomes := DecideAll(in)
	for a, o := range outcomes {
		s.metrics.IncrementOutcome(string(a), string(o))
	}

	report := &Report{
		BusinessID:  businessID,
		EvaluatedAt: requestcontext.Now(ctx),
		Outcomes:    outcomes,
		DraftCodes:  draftCodes(draft),
	}

	if err := s.auditDissolution(ctx, businessID, outcomes[ActionDissolveCompany]); err != nil {
		return nil, err
	}
	allowed := countAllowed(outcomes)
	s.auditEvaluated(ctx, businessID, "", strconv.Itoa(allowed)+"/"+strconv.Itoa(len(outcomes)))

	s.logger.InfoContext(ctx, "allowable actions resolved",
		"business_id", businessID,
		"allowed", allowed,
		"total", len(outcomes),
	)
	return report, nil
}

// Check evaluates a single action.
func (s *Service) Check(ctx context.Context, businessID string, action Action) (Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "allowable.Check",
		trace.WithAttributes(
			attribute.String("business.id", businessID),
			attribute.String("action", string(action)),
		))
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.ObserveResolveLatency(time.Since(start))
	}()

	in, _, err := s.buildInput(ctx, businessID)
	if err != nil {
		return OutcomeUnknown, err
	}

	out := Decide(action, in)
	s.metrics.IncrementOutcome(string(action), string(out))

	if action == ActionDissolveCompany {
		if err := s.auditDissolution(ctx, businessID, out); err != nil {
			return OutcomeUnknown, err
		}
	} else {
		s.auditEvaluated(ctx, businessID, string(action), string(out))
	}
	return out, nil
}

// buildInput gathers context and combines it with the request-scoped caller
// identity into the pure decision input.
func (s *Service) buildInput(ctx context.Context, businessID string) (Input, []filing.Entry, error) {
	gathered, err := s.gather(ctx, businessID)
	if err != nil {
		return Input{}, nil, err
	}

	in := Input{
		Roles:     requestcontext.Roles(ctx),
		Flags:     s.gate,
		RouteName: requestcontext.RouteName(ctx),
	}
	if gathered.business != nil {
		in.BusinessID = businessID
		in.Business = gathered.business
	}
	return in, gathered.draft, nil
}

// auditDissolution records a dissolution eligibility decision. These are
// compliance events: a publish failure fails the whole resolution.
func (s *Service) auditDissolution(ctx context.Context, businessID string, out Outcome) error {
	action := audit.EventDissolutionDenied
	if out.Allowed() {
		action = audit.EventDissolutionAllowed
	}
	err := s.audit.Emit(ctx, s.newEvent(ctx, audit.CategoryCompliance, businessID, string(action), string(out)))
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "publish dissolution audit event")
	}
	return nil
}

// auditEvaluated records a routine evaluation. Operations events are best
// effort; failures are logged and swallowed.
func (s *Service) auditEvaluated(ctx context.Context, businessID, action, decision string) {
	ev := s.newEvent(ctx, audit.CategoryOperations, businessID, string(audit.EventActionEvaluated), decision)
	ev.Reason = action
	if err := s.audit.Emit(ctx, ev); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed",
			"event", audit.EventActionEvaluated,
			"error", err,
		)
	}
}

func (s *Service) newEvent(ctx context.Context, category audit.EventCategory, businessID, action, decision string) audit.Event {
	return audit.Event{
		Category:   category,
		Timestamp:  requestcontext.Now(ctx),
		BusinessID: businessID,
		Action:     action,
		Decision:   decision,
		RequestID:  requestcontext.RequestID(ctx),
		ActorID:    requestcontext.AccountID(ctx),
		ActorRoles: requestcontext.Roles(ctx),
		ClientIP:   requestcontext.ClientIP(ctx),
		Device:     requestcontext.Device(ctx),
	}
}

func draftCodes(entries []filing.Entry) []string {
	if len(entries) == 0 {
		return nil
	}
	codes := make([]string, 0, len(entries))
	for _, e := range entries {
		codes = append(codes, e.FilingTypeCode)
	}
	return codes
}

func countAllowed(outcomes map[Action]Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Allowed() {
			n++
		}
	}
	return n
}
