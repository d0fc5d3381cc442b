package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harshydv24/event-nexus-backend/internal/clubs/domain"
	"github.com/harshydv24/event-nexus-backend/internal/clubs/repository"
)

// ClubService owns club records and their rosters.
type ClubService struct {
	clubRepo *repository.ClubRepository
}

func NewClubService(clubRepo *repository.ClubRepository) *ClubService {
	return &ClubService{clubRepo: clubRepo}
}

// EnsureClub returns the club with the given ID, creating a skeleton
// record on first access. Club-role users get a club ID at signup but
// the record itself is created lazily, on the first dashboard visit.
func (s *ClubService) EnsureClub(ctx context.Context, clubID, clubName string) (*domain.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err == nil {
		return club, nil
	}
	if err != domain.ErrClubNotFound {
		return nil, err
	}

	club = &domain.Club{
		ID:          clubID,
		Name:        clubName,
		Description: fmt.Sprintf("Welcome to %s!", clubName),
		FacultyAdvisor: domain.ClubMember{
			ID:               uuid.New().String(),
			Name:             "Faculty Advisor",
			Designation:      "Professor",
			IsFacultyAdvisor: true,
		},
		President: domain.ClubMember{
			ID:          uuid.New().String(),
			Name:        clubName + " President",
			Designation: "President",
			IsPresident: true,
		},
		CoreTeam: []domain.ClubMember{},
	}

	if err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, err
	}

	return club, nil
}

// Create stores a fully specified club record.
func (s *ClubService) Create(ctx context.Context, req *domain.CreateClubRequest) (*domain.Club, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidClub)
	}

	club := &domain.Club{
		ID:             req.ID,
		Name:           req.Name,
		Description:    req.Description,
		Logo:           req.Logo,
		FacultyAdvisor: req.FacultyAdvisor,
		President:      req.President,
		CoreTeam:       []domain.ClubMember{},
	}

	if err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, err
	}

	return club, nil
}

// Get retrieves a club.
func (s *ClubService) Get(ctx context.Context, clubID string) (*domain.Club, error) {
	return s.clubRepo.GetByID(ctx, clubID)
}

// List retrieves all clubs.
func (s *ClubService) List(ctx context.Context) ([]*domain.Club, error) {
	return s.clubRepo.List(ctx)
}

// Update applies profile changes. Leadership and core team are managed
// through their own operations.
func (s *ClubService) Update(ctx context.Context, clubID string, req *domain.UpdateClubRequest) (*domain.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		club.Name = *req.Name
	}
	if req.Description != nil {
		club.Description = *req.Description
	}
	if req.Logo != nil {
		club.Logo = *req.Logo
	}

	if err := s.clubRepo.Update(ctx, club); err != nil {
		return nil, err
	}

	return club, nil
}

// IncrementEventsCount bumps the club's proposal counter, creating the
// skeleton record first when the club has never visited its dashboard.
func (s *ClubService) IncrementEventsCount(ctx context.Context, clubID, clubName string) error {
	if _, err := s.EnsureClub(ctx, clubID, clubName); err != nil {
		return err
	}
	return s.clubRepo.IncrementEventsCount(ctx, clubID)
}

// AddCoreMember appends one member to the core team. Members are never
// edited or removed once added.
func (s *ClubService) AddCoreMember(ctx context.Context, clubID string, member domain.ClubMember) (*domain.Club, error) {
	if strings.TrimSpace(member.Name) == "" {
		return nil, fmt.Errorf("%w: member name is required", domain.ErrInvalidClub)
	}

	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	member.IsPresident = false
	member.IsFacultyAdvisor = false

	club.CoreTeam = append(club.CoreTeam, member)

	if err := s.clubRepo.Update(ctx, club); err != nil {
		return nil, err
	}

	return club, nil
}
