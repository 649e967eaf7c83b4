package challenge

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

type ChallengeSrvc struct {
	repo ChallengeRepo
}

func NewChallengeSrvc(repo ChallengeRepo) *ChallengeSrvc {
	return &ChallengeSrvc{repo: repo}
}

type CreateChallengeParams struct {
	Title       string
	Description string
	CreatedBy   uuid.UUID
}

func validateTitle(title string) error {
	const maxTitleLength = 200
	if title == "" {
		return newErrTitleEmpty()
	}
	if len(title) > maxTitleLength {
		return newErrTitleTooLong()
	}
	return nil
}

func (s *ChallengeSrvc) CreateChallenge(ctx context.Context, p CreateChallengeParams) (*Challenge, error) {
	if err := validateTitle(p.Title); err != nil {
		return nil, err
	}

	now := time.Now()
	row := &ChallengeRow{
		Uuid:        uuid.New().String(),
		Title:       p.Title,
		Description: p.Description,
		CreatedBy:   p.CreatedBy.String(),
		Version:     0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Save(ctx, row); err != nil {
		errMsg := fmt.Errorf("error saving challenge: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	return row.toChallenge(), nil
}

func (s *ChallengeSrvc) GetChallenge(ctx context.Context, challengeUUID uuid.UUID) (*Challenge, error) {
	row, err := s.repo.Get(ctx, challengeUUID)
	if err != nil {
		errMsg := fmt.Errorf("error getting challenge: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return nil, newErrChallengeNotFound()
	}

	return row.toChallenge(), nil
}

func (s *ChallengeSrvc) ListChallenges(ctx context.Context) ([]Challenge, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		errMsg := fmt.Errorf("error listing challenges: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	challenges := make([]Challenge, 0, len(rows))
	for _, row := range rows {
		challenges = append(challenges, *row.toChallenge())
	}
	sort.Slice(challenges, func(i, j int) bool {
		return challenges[i].CreatedAt.Before(challenges[j].CreatedAt)
	})
	return challenges, nil
}

// ListChallengesByAdmin returns the challenges created by the given admin.
func (s *ChallengeSrvc) ListChallengesByAdmin(ctx context.Context, adminUUID uuid.UUID) ([]Challenge, error) {
	all, err := s.ListChallenges(ctx)
	if err != nil {
		return nil, err
	}

	own := make([]Challenge, 0)
	for _, c := range all {
		if c.CreatedBy == adminUUID {
			own = append(own, c)
		}
	}
	return own, nil
}

type UpdateChallengeParams struct {
	Title       *string
	Description *string
}

// UpdateChallenge applies the provided changes. Only the creating admin may
// modify a challenge.
func (s *ChallengeSrvc) UpdateChallenge(ctx context.Context, challengeUUID, callerUUID uuid.UUID, p UpdateChallengeParams) (*Challenge, error) {
	row, err := s.repo.Get(ctx, challengeUUID)
	if err != nil {
		errMsg := fmt.Errorf("error getting challenge: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return nil, newErrChallengeNotFound()
	}
	if row.CreatedBy != callerUUID.String() {
		return nil, newErrNotChallengeOwner()
	}

	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return nil, err
		}
		row.Title = *p.Title
	}
	if p.Description != nil {
		row.Description = *p.Description
	}
	row.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, row); err != nil {
		errMsg := fmt.Errorf("error saving challenge: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	return row.toChallenge(), nil
}

func (s *ChallengeSrvc) DeleteChallenge(ctx context.Context, challengeUUID, callerUUID uuid.UUID) error {
	row, err := s.repo.Get(ctx, challengeUUID)
	if err != nil {
		errMsg := fmt.Errorf("error getting challenge: %w", err)
		return newErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return newErrChallengeNotFound()
	}
	if row.CreatedBy != callerUUID.String() {
		return newErrNotChallengeOwner()
	}

	if err := s.repo.Delete(ctx, challengeUUID); err != nil {
		errMsg := fmt.Errorf("error deleting challenge: %w", err)
		return newErrInternalSE().SetDebug(errMsg)
	}
	return nil
}
