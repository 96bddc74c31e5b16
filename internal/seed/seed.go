// internal/seed/seed.go
// Demo fixtures for local development. The data mirrors what the mobile
// client shipped with: five Riyadh-based users, a week of activities,
// their group chats, and a couple of open join requests.

package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/anisapp/anis-server/internal/activities"
	"github.com/anisapp/anis-server/internal/chat"
	"github.com/anisapp/anis-server/internal/requests"
	"github.com/anisapp/anis-server/internal/users"
)

// Stores bundles the repositories the seeder writes into.
type Stores struct {
	Users      users.Repository
	Activities activities.Repository
	Requests   requests.Repository
	Chats      chat.Repository
}

// Load populates the in-memory stores with the demo fixtures.
func Load(ctx context.Context, stores Stores) error {
	now := time.Now()

	seedUsers := demoUsers(now)
	for i := range seedUsers {
		if err := stores.Users.Create(ctx, &seedUsers[i]); err != nil {
			return fmt.Errorf("seed user %s: %w", seedUsers[i].ID, err)
		}
	}

	seedActivities := demoActivities(now)
	for i := range seedActivities {
		if err := stores.Activities.Create(ctx, &seedActivities[i]); err != nil {
			return fmt.Errorf("seed activity %q: %w", seedActivities[i].Title, err)
		}
	}

	if err := seedChats(ctx, stores, seedActivities, seedUsers, now); err != nil {
		return err
	}

	return seedRequests(ctx, stores, seedActivities, now)
}

func demoUsers(now time.Time) []users.User {
	return []users.User{
		newUser("user1", "Yazeed Al-Rashid", "yazeed@example.com", 28,
			"Padel enthusiast and sports lover. Always up for a good game!",
			now, activities.SportPadel, activities.SportTennis, activities.SportFootball),
		newUser("user2", "Ahmed Al-Mansouri", "ahmed@example.com", 24,
			"Football captain looking for team players",
			now, activities.SportFootball, activities.SportBasketball, activities.SportVolleyball),
		newUser("user3", "Sarah Johnson", "sarah@example.com", 26,
			"Tennis coach and fitness enthusiast",
			now, activities.SportTennis, activities.SportYoga, activities.SportPilates),
		newUser("user4", "Mike Rodriguez", "mike@example.com", 30,
			"Beach volleyball player and adventure seeker",
			now, activities.SportVolleyball, activities.SportSurfing, activities.SportCycling),
		newUser("user5", "Lisa Chen", "lisa@example.com", 22,
			"Basketball player and wellness advocate",
			now, activities.SportBasketball, activities.SportTennis, activities.SportYoga),
	}
}

func newUser(id, name, email string, age int, bio string, now time.Time, interests ...activities.SportType) users.User {
	return users.User{
		ID:           id,
		Name:         name,
		Email:        email,
		Age:          &age,
		Interests:    interests,
		Bio:          &bio,
		CreatedAt:    now,
		LastActiveAt: now,
	}
}

func demoActivities(now time.Time) []activities.Activity {
	locations := []activities.Location{
		location(24.7136, 46.6753, "King Fahd Stadium, Riyadh"),
		location(24.7200, 46.6800, "Al Nakheel Sports Center"),
		location(24.7100, 46.6700, "Riyadh Tennis Club"),
		location(24.7150, 46.6850, "Prince Faisal Sports Complex"),
		location(24.7180, 46.6780, "Al Malaz Sports Center"),
		location(24.7050, 46.6720, "Diplomatic Quarter Sports Club"),
		location(24.7220, 46.6820, "Al Hamra Sports Complex"),
		location(24.7080, 46.6680, "King Saud University Sports"),
	}

	type fixture struct {
		title       string
		description string
		sport       activities.SportType
		hostID      string
		hostName    string
		startsIn    time.Duration
		maxPlayers  int
		skill       activities.SkillLevel
	}

	fixtures := []fixture{
		{"Padel Warriors Match", "Looking for skilled players to join our regular padel session. Great for improving technique!", activities.SportPadel, "user1", "Yazeed Al-Rashid", 1 * time.Hour, 4, activities.SkillIntermediate},
		{"5-a-side Football", "Weekly football game at the local pitch. All skill levels welcome!", activities.SportFootball, "user2", "Ahmed Al-Mansouri", 2 * time.Hour, 10, activities.SkillBeginner},
		{"Tennis Doubles Championship", "Competitive doubles match for advanced players. Prize for winners!", activities.SportTennis, "user3", "Sarah Johnson", 90 * time.Minute, 4, activities.SkillAdvanced},
		{"Beach Volleyball Training", "Indoor volleyball practice session. Great for beginners to learn the basics.", activities.SportVolleyball, "user4", "Mike Rodriguez", 150 * time.Minute, 12, activities.SkillIntermediate},
		{"Basketball Pick-up Game", "Casual basketball game. Come ready to play!", activities.SportBasketball, "user5", "Lisa Chen", 3 * time.Hour, 10, activities.SkillIntermediate},
		{"Morning Yoga Session", "Peaceful morning yoga in the park. All levels welcome.", activities.SportYoga, "user3", "Sarah Johnson", 330 * time.Minute, 20, activities.SkillBeginner},
		{"Cycling Adventure", "30km cycling route through Riyadh. Intermediate cyclists preferred.", activities.SportCycling, "user4", "Mike Rodriguez", 7 * time.Hour, 8, activities.SkillIntermediate},
		{"Bowling Night", "Fun bowling night with friends. Pizza and drinks included!", activities.SportBowling, "user2", "Ahmed Al-Mansouri", 9 * time.Hour, 16, activities.SkillBeginner},
	}

	result := make([]activities.Activity, 0, len(fixtures))
	for i, f := range fixtures {
		description := f.description
		result = append(result, activities.Activity{
			ID:                  uuid.NewString(),
			Title:               f.title,
			Description:         &description,
			SportType:           f.sport,
			HostID:              f.hostID,
			HostName:            f.hostName,
			Location:            locations[i],
			DateTime:            now.Add(f.startsIn),
			MaxParticipants:     f.maxPlayers,
			CurrentParticipants: 1,
			SkillLevel:          f.skill,
			Status:              activities.StatusOpen,
			CreatedAt:           now,
			UpdatedAt:           now,
		})
	}
	return result
}

// seedChats opens a group chat for the first few activities and fills
// in a short message history, mirroring the client's demo data.
func seedChats(ctx context.Context, stores Stores, seedActivities []activities.Activity, seedUsers []users.User, now time.Time) error {
	chatMembers := [][]string{
		{"user1", "user2", "user3", "user4"},
		{"user1", "user2", "user3", "user4", "user5"},
		{"user1", "user3", "user4", "user5"},
		{"user1", "user2", "user4", "user5"},
	}
	lastLines := []string{
		"Great game yesterday! Same time next week?",
		"Who's bringing the water bottles?",
		"Court booking confirmed for tomorrow",
		"Rain cancelled today's game",
	}

	names := make(map[string]string, len(seedUsers))
	for _, u := range seedUsers {
		names[u.ID] = u.Name
	}

	for i := range chatMembers {
		activity := seedActivities[i]
		members := chatMembers[i]

		c := chat.Chat{
			ID:            uuid.NewString(),
			ActivityID:    activity.ID,
			ActivityTitle: activity.Title,
			Participants:  members,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := stores.Chats.CreateChat(ctx, &c); err != nil {
			return fmt.Errorf("seed chat for %q: %w", activity.Title, err)
		}
		if err := stores.Activities.SetChatID(ctx, activity.ID, c.ID); err != nil {
			return fmt.Errorf("link chat for %q: %w", activity.Title, err)
		}

		history := []chat.Message{
			message(c.ID, members[0], names[members[0]], "Hey everyone! Looking forward to the game", chat.MessageText, now.Add(-40*time.Minute)),
			message(c.ID, "system", "System", fmt.Sprintf("%s joined the activity", names[members[1]]), chat.MessageJoin, now.Add(-35*time.Minute)),
			message(c.ID, members[1], names[members[1]], "Thanks for having me! What should I bring?", chat.MessageText, now.Add(-30*time.Minute)),
			message(c.ID, activity.HostID, activity.HostName, lastLines[i], chat.MessageText, now.Add(-10*time.Minute)),
		}
		for j := range history {
			if err := stores.Chats.AppendMessage(ctx, &history[j]); err != nil {
				return fmt.Errorf("seed messages for %q: %w", activity.Title, err)
			}
		}
	}

	return nil
}

func seedRequests(ctx context.Context, stores Stores, seedActivities []activities.Activity, now time.Time) error {
	fixtures := []requests.JoinRequest{
		{
			ID:                  uuid.NewString(),
			RequesterUserID:     "user2",
			RequesterName:       "Ahmed Al-Mansouri",
			SportType:           seedActivities[0].SportType,
			TargetActivityID:    seedActivities[0].ID,
			TargetActivityTitle: seedActivities[0].Title,
			Status:              requests.StatusPending,
			CreatedAt:           now.Add(-1 * time.Hour),
		},
		{
			ID:                  uuid.NewString(),
			RequesterUserID:     "user1",
			RequesterName:       "Yazeed Al-Rashid",
			SportType:           seedActivities[2].SportType,
			TargetActivityID:    seedActivities[2].ID,
			TargetActivityTitle: seedActivities[2].Title,
			Status:              requests.StatusPending,
			CreatedAt:           now.Add(-2 * time.Hour),
		},
	}

	for i := range fixtures {
		if err := stores.Requests.Create(ctx, &fixtures[i]); err != nil {
			return fmt.Errorf("seed join request: %w", err)
		}
	}
	return nil
}

func message(chatID, senderID, senderName, content string, messageType chat.MessageType, at time.Time) chat.Message {
	return chat.Message{
		ID:          uuid.NewString(),
		ChatID:      chatID,
		SenderID:    senderID,
		SenderName:  senderName,
		Content:     content,
		MessageType: messageType,
		CreatedAt:   at,
	}
}

func location(lat, lng float64, address string) activities.Location {
	return activities.Location{Latitude: lat, Longitude: lng, Address: &address}
}
