package bootstrap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	clubdomain "github.com/harshydv24/event-nexus-backend/internal/clubs/domain"
	clubrepo "github.com/harshydv24/event-nexus-backend/internal/clubs/repository"
	eventdomain "github.com/harshydv24/event-nexus-backend/internal/events/domain"
	eventrepo "github.com/harshydv24/event-nexus-backend/internal/events/repository"
)

const seededKey = "portal:seeded"

// Seed loads the demo club and events on first run, guarded by a
// marker key so restarts do not duplicate the data.
func Seed(ctx context.Context, client *redis.Client) error {
	ok, err := client.SetNX(ctx, seededKey, "1", 0).Result()
	if err != nil {
		return fmt.Errorf("check seed marker: %w", err)
	}
	if !ok {
		return nil
	}

	clubs := clubrepo.NewClubRepository(client)
	events := eventrepo.NewEventRepository(client)

	club := &clubdomain.Club{
		ID:          "club-1",
		Name:        "Tech Innovators Club",
		Description: "A club dedicated to exploring and innovating with cutting-edge technology. We organize hackathons, workshops, and tech talks.",
		FacultyAdvisor: clubdomain.ClubMember{
			ID:               "fa-1",
			Name:             "Dr. Sarah Mitchell",
			Designation:      "Associate Professor, Computer Science",
			IsFacultyAdvisor: true,
		},
		President: clubdomain.ClubMember{
			ID:          "pres-1",
			Name:        "Alex Johnson",
			Designation: "President",
			IsPresident: true,
		},
		CoreTeam: []clubdomain.ClubMember{
			{ID: "ct-1", Name: "Emily Chen", Designation: "Vice President"},
			{ID: "ct-2", Name: "Michael Brown", Designation: "Technical Lead"},
			{ID: "ct-3", Name: "Jessica Lee", Designation: "Event Coordinator"},
			{ID: "ct-4", Name: "David Wilson", Designation: "Marketing Head"},
		},
		EventsCount: 2,
	}
	if err := clubs.Create(ctx, club); err != nil {
		return fmt.Errorf("seed club: %w", err)
	}

	demoEvents := []*eventdomain.Event{
		{
			ID:                   "event-1",
			Name:                 "Annual Hackathon 2024",
			Description:          "A 24-hour coding competition where students build innovative solutions to real-world problems.",
			Date:                 "2024-03-15",
			Time:                 "09:00 AM",
			Venue:                "C1 Auditorium",
			ExpectedParticipants: 200,
			GuestName:            "John Smith, CTO TechCorp",
			ClubID:               club.ID,
			ClubName:             club.Name,
			Status:               eventdomain.StatusVenueSelected,
			Participants:         []eventdomain.EventParticipant{},
		},
		{
			ID:                   "event-2",
			Name:                 "AI Workshop Series",
			Description:          "A hands-on workshop series covering machine learning fundamentals and practical applications.",
			Date:                 "2024-04-01",
			ExpectedParticipants: 100,
			ClubID:               club.ID,
			ClubName:             club.Name,
			Status:               eventdomain.StatusPendingApproval,
			Participants:         []eventdomain.EventParticipant{},
		},
	}
	for _, event := range demoEvents {
		if err := events.Create(ctx, event); err != nil {
			return fmt.Errorf("seed event %s: %w", event.Name, err)
		}
	}

	return nil
}
