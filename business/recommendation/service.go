package recommendation

import (
	"context"
	"errors"
	"fmt"

	"societyBackend/domain"
	"societyBackend/pkg/logger"
	"societyBackend/pkg/metrics"

	"gorm.io/datatypes"
)

// ErrCompanionNotFound is returned by CompanionRepository.ResolveOwner when
// a reference matches neither a profile id nor a companion owner's user id.
var ErrCompanionNotFound = errors.New("companion not found")

const (
	defaultPageLimit   = 20
	defaultTeaserLimit = 5
)

// Service orchestrates candidate selection, strategy choice, scoring and the
// cached pagination of the for-you feed.
type Service struct {
	companionRepo   CompanionRepository
	interactionRepo InteractionRepository
	bookingRepo     BookingRepository
	favoriteRepo    FavoriteRepository
	cache           Cache
	cfg             Config
}

func NewService(
	companionRepo CompanionRepository,
	interactionRepo InteractionRepository,
	bookingRepo BookingRepository,
	favoriteRepo FavoriteRepository,
	cache Cache,
	cfg Config,
) *Service {
	return &Service{
		companionRepo:   companionRepo,
		interactionRepo: interactionRepo,
		bookingRepo:     bookingRepo,
		favoriteRepo:    favoriteRepo,
		cache:           cache,
		cfg:             cfg,
	}
}

// GetForYou serves one page of personalized recommendations.
//
// A warm cache serves every page without recomputation and always reports
// the hybrid strategy, even when the entry was produced by the cold-start
// path. Only offset-0 requests populate the cache; a page request beyond the
// first against a cold cache returns an empty page instead of computing.
func (s *Service) GetForYou(ctx context.Context, userID domain.UserID, limit, offset int) (domain.ForYouResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ForYouResult{}, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	cached, err := s.cache.GetForYou(ctx, userID)
	if err != nil {
		return domain.ForYouResult{}, fmt.Errorf("failed to read recommendation cache: %w", err)
	}

	if len(cached) > 0 {
		CacheLookupsTotal.WithLabelValues("hit").Inc()
		ServedByStrategyTotal.WithLabelValues(string(domain.StrategyHybrid)).Inc()
		return pageOf(cached, limit, offset, domain.StrategyHybrid), nil
	}
	CacheLookupsTotal.WithLabelValues("miss").Inc()

	if offset > 0 {
		// cold cache, non-first page: callers must request page 0 first
		return domain.ForYouResult{
			Companions: []domain.ScoredCompanion{},
			HasMore:    false,
			Total:      0,
			Strategy:   domain.StrategyColdStart,
		}, nil
	}

	strategy, err := s.chooseStrategy(ctx, userID)
	if err != nil {
		return domain.ForYouResult{}, err
	}

	candidateIDs, err := s.selectCandidates(ctx, userID)
	if err != nil {
		return domain.ForYouResult{}, err
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommendation_compute",
		"trace_id", tid,
		"user_id", uint(userID),
		"strategy", string(strategy),
		"candidate_count", len(candidateIDs),
	)

	if len(candidateIDs) == 0 {
		ServedByStrategyTotal.WithLabelValues(string(strategy)).Inc()
		return domain.ForYouResult{
			Companions: []domain.ScoredCompanion{},
			HasMore:    false,
			Total:      0,
			Strategy:   strategy,
		}, nil
	}

	candidates, err := s.companionRepo.FindCandidatesByIDs(ctx, candidateIDs)
	if err != nil {
		return domain.ForYouResult{}, fmt.Errorf("failed to load candidate snapshots: %w", err)
	}

	var scored []domain.ScoredCompanion
	if strategy == domain.StrategyHybrid {
		signals, err := s.fetchUserSignals(ctx, userID, candidates)
		if err != nil {
			return domain.ForYouResult{}, err
		}
		scored = scoreHybrid(s.cfg, signals, candidates)
	} else {
		scored = scoreColdStart(s.cfg, candidates)
	}

	if len(scored) > 0 {
		if err := s.cache.SetForYou(ctx, userID, scored, s.cfg.CacheTTL); err != nil {
			return domain.ForYouResult{}, fmt.Errorf("failed to write recommendation cache: %w", err)
		}
	}

	ServedByStrategyTotal.WithLabelValues(string(strategy)).Inc()
	return pageOf(scored, limit, 0, strategy), nil
}

// GetTeaser is the small dashboard slice: always a first-page call, so it
// populates the cache as a side effect.
func (s *Service) GetTeaser(ctx context.Context, userID domain.UserID, limit int) ([]domain.ScoredCompanion, error) {
	if limit <= 0 {
		limit = defaultTeaserLimit
	}

	result, err := s.GetForYou(ctx, userID, limit, 0)
	if err != nil {
		return nil, err
	}

	return result.Companions, nil
}

// TrackInteraction persists one interaction event and invalidates the user's
// cached recommendations when the event is high-signal. An unresolvable
// companion reference is a logged no-op, never an error.
func (s *Service) TrackInteraction(ctx context.Context, userID domain.UserID, input domain.InteractionInput) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if input.EventType == "" {
		return fmt.Errorf("event_type is required")
	}

	ownerID, err := s.companionRepo.ResolveOwner(ctx, input.CompanionRef)
	if err != nil {
		if errors.Is(err, ErrCompanionNotFound) {
			logger.Warn("interaction for unknown companion dropped",
				"user_id", uint(userID),
				"companion_ref", input.CompanionRef,
				"event_type", string(input.EventType),
			)
			return nil
		}
		return fmt.Errorf("failed to resolve companion: %w", err)
	}

	interaction := &domain.Interaction{
		UserID:          userID,
		CompanionUserID: ownerID,
		EventType:       input.EventType,
		EventValue:      s.cfg.EventWeight(input.EventType),
		DwellTimeMs:     input.DwellTimeMs,
		SessionID:       input.SessionID,
	}
	if input.Context != nil {
		interaction.Context = datatypes.JSONMap(input.Context)
	}

	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		return fmt.Errorf("failed to save interaction: %w", err)
	}
	metrics.InteractionEventsTotal.WithLabelValues(s.cfg.EventTypeLabel(input.EventType)).Inc()

	if s.cfg.IsHighSignal(input.EventType) {
		// invalidation is not transactional with the write; a failure here
		// only extends staleness up to the TTL
		if err := s.cache.DeleteForYou(ctx, userID); err != nil {
			logger.Warn("failed to invalidate recommendation cache",
				"user_id", uint(userID),
				"event_type", string(input.EventType),
				"error", err,
			)
		}
	}

	logger.Debug("interaction_tracked",
		"trace_id", TraceIDFromContext(ctx),
		"user_id", uint(userID),
		"companion_user_id", uint(ownerID),
		"event_type", string(input.EventType),
		"event_value", interaction.EventValue,
	)

	return nil
}

// Refresh drops the user's cached recommendations; the next GetForYou call
// recomputes.
func (s *Service) Refresh(ctx context.Context, userID domain.UserID) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.cache.DeleteForYou(ctx, userID); err != nil {
		return fmt.Errorf("failed to invalidate recommendation cache: %w", err)
	}

	return nil
}

// fetchUserSignals gathers everything the hybrid scorer needs up front:
// recent completed bookings, favorites, and grouped interaction counts
// restricted to the candidates' owners.
func (s *Service) fetchUserSignals(ctx context.Context, userID domain.UserID, candidates []domain.CandidateCompanion) (UserSignals, error) {
	bookings, err := s.bookingRepo.FindCompletedByHirer(ctx, userID, s.cfg.BookingHistoryLimit)
	if err != nil {
		return UserSignals{}, fmt.Errorf("failed to load booking history: %w", err)
	}

	seen := make(map[string]bool, len(bookings))
	occasions := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if b.OccasionType == "" || seen[b.OccasionType] {
			continue
		}
		seen[b.OccasionType] = true
		occasions = append(occasions, b.OccasionType)
	}

	favorites, err := s.favoriteRepo.FindByHirer(ctx, userID)
	if err != nil {
		return UserSignals{}, fmt.Errorf("failed to load favorites: %w", err)
	}

	favoriteOwners := make(map[domain.UserID]bool, len(favorites))
	for _, f := range favorites {
		favoriteOwners[f.CompanionUserID] = true
	}

	owners := make([]domain.UserID, 0, len(candidates))
	for _, c := range candidates {
		owners = append(owners, c.OwnerUserID)
	}

	groups, err := s.interactionRepo.GroupByCompanion(ctx, userID, owners)
	if err != nil {
		return UserSignals{}, fmt.Errorf("failed to load interaction history: %w", err)
	}

	interactionScores := make(map[domain.UserID]float64, len(groups))
	for _, g := range groups {
		interactionScores[g.CompanionUserID] += float64(g.Count) * s.cfg.EventWeight(g.EventType)
	}

	return UserSignals{
		PreferredOccasions: occasions,
		HasBookingHistory:  len(bookings) > 0,
		FavoriteOwners:     favoriteOwners,
		InteractionScores:  interactionScores,
	}, nil
}

// pageOf slices a full ranked list into one page with pagination metadata
// computed against the full list.
func pageOf(full []domain.ScoredCompanion, limit, offset int, strategy domain.Strategy) domain.ForYouResult {
	total := len(full)

	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	page := make([]domain.ScoredCompanion, end-start)
	copy(page, full[start:end])

	return domain.ForYouResult{
		Companions: page,
		HasMore:    offset+limit < total,
		Total:      total,
		Strategy:   strategy,
	}
}
