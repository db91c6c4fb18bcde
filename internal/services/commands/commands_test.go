package commands

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/MyelinBots/tagbot-go/internal/db/repositories/profile"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSession records messages sent
type mockSession struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockSession) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, content)
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func (m *mockSession) LastMessage() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.messages) == 0 {
		return ""
	}
	return m.messages[len(m.messages)-1]
}

func (m *mockSession) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

// mockProfileRepo is a simple in-memory mock
type mockProfileRepo struct {
	mu       sync.RWMutex
	users    map[int64]*profile.User
	tags     map[string]*profile.GamerTag
	contacts map[int64]*profile.ContactInfo
}

func newMockRepo() *mockProfileRepo {
	return &mockProfileRepo{
		users:    make(map[int64]*profile.User),
		tags:     make(map[string]*profile.GamerTag),
		contacts: make(map[int64]*profile.ContactInfo),
	}
}

func (m *mockProfileRepo) tagKey(discordID int64, platform string) string {
	return fmt.Sprintf("%d|%s", discordID, platform)
}

func (m *mockProfileRepo) RegisterProfile(ctx context.Context, discordID int64, username, platform, tag string, email *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[discordID]; !exists {
		m.users[discordID] = &profile.User{DiscordID: discordID, Username: username}
	}
	m.tags[m.tagKey(discordID, platform)] = &profile.GamerTag{DiscordID: discordID, Platform: platform, Tag: tag}
	if email != nil {
		m.contacts[discordID] = &profile.ContactInfo{DiscordID: discordID, Email: *email, Consent: true}
	}
	return nil
}

func (m *mockProfileRepo) GetUser(ctx context.Context, discordID int64) (*profile.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u := m.users[discordID]; u != nil {
		cu := *u
		return &cu, nil
	}
	return nil, nil
}

func (m *mockProfileRepo) ListTags(ctx context.Context, discordID int64) ([]*profile.GamerTag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*profile.GamerTag
	for _, t := range m.tags {
		if t.DiscordID == discordID {
			ct := *t
			result = append(result, &ct)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Platform < result[j].Platform })
	return result, nil
}

func (m *mockProfileRepo) GetTag(ctx context.Context, discordID int64, platform string) (*profile.GamerTag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t := m.tags[m.tagKey(discordID, platform)]; t != nil {
		ct := *t
		return &ct, nil
	}
	return nil, nil
}

func (m *mockProfileRepo) GetContact(ctx context.Context, discordID int64) (*profile.ContactInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c := m.contacts[discordID]; c != nil {
		cc := *c
		return &cc, nil
	}
	return nil, nil
}

func newTestController(t *testing.T) (*CommandControllerImpl, *mockSession, *mockProfileRepo) {
	t.Helper()
	session := &mockSession{}
	repo := newMockRepo()
	controller := NewCommandController(session, repo, "!")
	controller.AddCommand("register", controller.RegisterHandler())
	controller.AddCommand("myinfo", controller.MyInfoHandler())
	controller.AddCommand("showt17", controller.ShowTagHandler(PlatformT17))
	return controller, session, repo
}

func message(content, authorID, username string, mentions ...*discordgo.User) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ChannelID: "chan-1",
		Content:   content,
		Author:    &discordgo.User{ID: authorID, Username: username},
		Mentions:  mentions,
	}}
}

func TestRegisterCreatesProfile(t *testing.T) {
	controller, session, repo := newTestController(t)
	ctx := context.Background()

	err := controller.HandleCommand(ctx, message("!register T17 Raptor99", "111", "raptor"))
	require.NoError(t, err)

	assert.Equal(t, "✅ Info registered for raptor!", session.LastMessage())

	user, err := repo.GetUser(ctx, 111)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "raptor", user.Username)

	tag, err := repo.GetTag(ctx, 111, "T17")
	require.NoError(t, err)
	require.NotNil(t, tag)
	assert.Equal(t, "Raptor99", tag.Tag)

	contact, err := repo.GetContact(ctx, 111)
	require.NoError(t, err)
	assert.Nil(t, contact, "register without email must not create contact info")
}

func TestRegisterLastWriteWins(t *testing.T) {
	controller, _, repo := newTestController(t)
	ctx := context.Background()

	require.NoError(t, controller.HandleCommand(ctx, message("!register T17 FirstTag", "111", "raptor")))
	require.NoError(t, controller.HandleCommand(ctx, message("!register T17 SecondTag", "111", "raptor")))

	tags, err := repo.ListTags(ctx, 111)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "SecondTag", tags[0].Tag)
}

func TestRegisterWithEmailGrantsConsent(t *testing.T) {
	controller, _, repo := newTestController(t)
	ctx := context.Background()

	require.NoError(t, controller.HandleCommand(ctx, message("!register T17 Raptor99 a@x.com", "111", "raptor")))

	contact, err := repo.GetContact(ctx, 111)
	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, "a@x.com", contact.Email)
	assert.True(t, contact.Consent)
}

func TestRegisterWithoutEmailKeepsContactUntouched(t *testing.T) {
	controller, _, repo := newTestController(t)
	ctx := context.Background()

	require.NoError(t, controller.HandleCommand(ctx, message("!register T17 A a@x.com", "111", "raptor")))
	require.NoError(t, controller.HandleCommand(ctx, message("!register T17 B", "111", "raptor")))

	tag, err := repo.GetTag(ctx, 111, "T17")
	require.NoError(t, err)
	require.NotNil(t, tag)
	assert.Equal(t, "B", tag.Tag)

	contact, err := repo.GetContact(ctx, 111)
	require.NoError(t, err)
	require.NotNil(t, contact, "second register without email must not clear contact info")
	assert.Equal(t, "a@x.com", contact.Email)
	assert.True(t, contact.Consent)
}

func TestRegisterKeepsOriginalUsername(t *testing.T) {
	controller, _, repo := newTestController(t)
	ctx := context.Background()

	require.NoError(t, controller.HandleCommand(ctx, message("!register T17 Raptor99", "111", "oldname")))
	require.NoError(t, controller.HandleCommand(ctx, message("!register Steam Other", "111", "newname")))

	user, err := repo.GetUser(ctx, 111)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "oldname", user.Username)
}

func TestRegisterUsageOnMissingArgs(t *testing.T) {
	controller, session, _ := newTestController(t)

	err := controller.HandleCommand(context.Background(), message("!register T17", "111", "raptor"))
	require.NoError(t, err)
	assert.Equal(t, "Usage: !register <platform> <tag> [email]", session.LastMessage())
}

func TestMyInfoWithNoTags(t *testing.T) {
	controller, session, _ := newTestController(t)

	err := controller.HandleCommand(context.Background(), message("!myinfo", "111", "raptor"))
	require.NoError(t, err)
	assert.Equal(t, "🎮 Gamer Tags:\n", session.LastMessage())
}

func TestMyInfoFormatsTagsAndEmail(t *testing.T) {
	controller, session, _ := newTestController(t)
	ctx := context.Background()

	require.NoError(t, controller.HandleCommand(ctx, message("!register T17 Raptor99 a@x.com", "111", "raptor")))
	require.NoError(t, controller.HandleCommand(ctx, message("!register Steam SteamGuy", "111", "raptor")))

	require.NoError(t, controller.HandleCommand(ctx, message("!myinfo", "111", "raptor")))
	assert.Equal(t, "🎮 Gamer Tags:\n- Steam: SteamGuy\n- T17: Raptor99\n\n📧 Email: a@x.com", session.LastMessage())
}

func TestMyInfoOmitsEmailWithoutConsent(t *testing.T) {
	controller, session, repo := newTestController(t)
	ctx := context.Background()

	require.NoError(t, controller.HandleCommand(ctx, message("!register T17 Raptor99", "111", "raptor")))
	repo.contacts[111] = &profile.ContactInfo{DiscordID: 111, Email: "a@x.com", Consent: false}

	require.NoError(t, controller.HandleCommand(ctx, message("!myinfo", "111", "raptor")))
	assert.Equal(t, "🎮 Gamer Tags:\n- T17: Raptor99\n", session.LastMessage())
}

func TestShowTagDefaultsToInvoker(t *testing.T) {
	controller, session, _ := newTestController(t)
	ctx := context.Background()

	require.NoError(t, controller.HandleCommand(ctx, message("!register T17 Raptor99", "111", "raptor")))
	require.NoError(t, controller.HandleCommand(ctx, message("!showt17", "111", "raptor")))

	assert.Equal(t, "🎮 raptor's T17 tag: **Raptor99**", session.LastMessage())
}

func TestShowTagForMentionedMember(t *testing.T) {
	controller, session, _ := newTestController(t)
	ctx := context.Background()

	require.NoError(t, controller.HandleCommand(ctx, message("!register T17 Raptor99", "111", "raptor")))

	target := &discordgo.User{ID: "111", Username: "raptor", GlobalName: "Raptor"}
	require.NoError(t, controller.HandleCommand(ctx, message("!showt17 <@111>", "222", "someone", target)))

	assert.Equal(t, "🎮 Raptor's T17 tag: **Raptor99**", session.LastMessage())
}

func TestShowTagNotFound(t *testing.T) {
	controller, session, _ := newTestController(t)

	err := controller.HandleCommand(context.Background(), message("!showt17", "111", "raptor"))
	require.NoError(t, err)
	assert.Equal(t, "❌ No T17 tag found for raptor", session.LastMessage())
}

func TestHandleCommandIgnoresUnknownAndUnprefixed(t *testing.T) {
	controller, session, _ := newTestController(t)
	ctx := context.Background()

	require.NoError(t, controller.HandleCommand(ctx, message("hello there", "111", "raptor")))
	require.NoError(t, controller.HandleCommand(ctx, message("!dance", "111", "raptor")))

	assert.Equal(t, 0, session.Count())
}

func TestHandleCommandIsCaseInsensitive(t *testing.T) {
	controller, session, _ := newTestController(t)

	require.NoError(t, controller.HandleCommand(context.Background(), message("!MyInfo", "111", "raptor")))
	assert.Equal(t, "🎮 Gamer Tags:\n", session.LastMessage())
}
