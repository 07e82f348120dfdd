package discord

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// FakeSession es un stub programable de Session: cada método tiene su Func
// y todas las llamadas quedan en el trace.
type FakeSession struct {
	mu    sync.Mutex
	trace []string

	ChannelMessageSendFunc        func(channelID, content string) (*discordgo.Message, error)
	ChannelMessageSendReplyFunc   func(channelID, content string, ref *discordgo.MessageReference) (*discordgo.Message, error)
	ChannelMessageSendComplexFunc func(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error)
	ChannelMessageDeleteFunc      func(channelID, messageID string) error
	InteractionRespondFunc        func(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error
	FollowupMessageCreateFunc     func(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams) (*discordgo.Message, error)
	GuildFunc                     func(guildID string) (*discordgo.Guild, error)
	GuildRolesFunc                func(guildID string) ([]*discordgo.Role, error)
	GuildChannelsFunc             func(guildID string) ([]*discordgo.Channel, error)
	GuildMemberRoleAddFunc        func(guildID, userID, roleID string) error
	GuildMemberRoleRemoveFunc     func(guildID, userID, roleID string) error
	ChannelPermissionSetFunc      func(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64) error
}

func NewFakeSession() *FakeSession {
	return &FakeSession{}
}

func (f *FakeSession) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

// Trace devuelve la secuencia de métodos llamados.
func (f *FakeSession) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeSession) Count(step string) int {
	n := 0
	for _, s := range f.Trace() {
		if s == step {
			n++
		}
	}
	return n
}

func (f *FakeSession) ChannelMessageSend(channelID, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.record("ChannelMessageSend")
	if f.ChannelMessageSendFunc != nil {
		return f.ChannelMessageSendFunc(channelID, content)
	}
	return &discordgo.Message{ID: "fake-msg", ChannelID: channelID, Content: content}, nil
}

func (f *FakeSession) ChannelMessageSendReply(channelID, content string, ref *discordgo.MessageReference, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.record("ChannelMessageSendReply")
	if f.ChannelMessageSendReplyFunc != nil {
		return f.ChannelMessageSendReplyFunc(channelID, content, ref)
	}
	return &discordgo.Message{ID: "fake-reply", ChannelID: channelID, Content: content}, nil
}

func (f *FakeSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.record("ChannelMessageSendComplex")
	if f.ChannelMessageSendComplexFunc != nil {
		return f.ChannelMessageSendComplexFunc(channelID, data)
	}
	return &discordgo.Message{ID: "fake-panel", ChannelID: channelID}, nil
}

func (f *FakeSession) ChannelMessageDelete(channelID, messageID string, _ ...discordgo.RequestOption) error {
	f.record("ChannelMessageDelete")
	if f.ChannelMessageDeleteFunc != nil {
		return f.ChannelMessageDeleteFunc(channelID, messageID)
	}
	return nil
}

func (f *FakeSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.record("InteractionRespond")
	if f.InteractionRespondFunc != nil {
		return f.InteractionRespondFunc(interaction, resp)
	}
	return nil
}

func (f *FakeSession) FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.record("FollowupMessageCreate")
	if f.FollowupMessageCreateFunc != nil {
		return f.FollowupMessageCreateFunc(interaction, wait, data)
	}
	return &discordgo.Message{ID: "fake-followup"}, nil
}

func (f *FakeSession) Guild(guildID string, _ ...discordgo.RequestOption) (*discordgo.Guild, error) {
	f.record("Guild")
	if f.GuildFunc != nil {
		return f.GuildFunc(guildID)
	}
	return &discordgo.Guild{ID: guildID}, nil
}

func (f *FakeSession) GuildRoles(guildID string, _ ...discordgo.RequestOption) ([]*discordgo.Role, error) {
	f.record("GuildRoles")
	if f.GuildRolesFunc != nil {
		return f.GuildRolesFunc(guildID)
	}
	return nil, nil
}

func (f *FakeSession) GuildChannels(guildID string, _ ...discordgo.RequestOption) ([]*discordgo.Channel, error) {
	f.record("GuildChannels")
	if f.GuildChannelsFunc != nil {
		return f.GuildChannelsFunc(guildID)
	}
	return nil, nil
}

func (f *FakeSession) GuildMemberRoleAdd(guildID, userID, roleID string, _ ...discordgo.RequestOption) error {
	f.record("GuildMemberRoleAdd")
	if f.GuildMemberRoleAddFunc != nil {
		return f.GuildMemberRoleAddFunc(guildID, userID, roleID)
	}
	return nil
}

func (f *FakeSession) GuildMemberRoleRemove(guildID, userID, roleID string, _ ...discordgo.RequestOption) error {
	f.record("GuildMemberRoleRemove")
	if f.GuildMemberRoleRemoveFunc != nil {
		return f.GuildMemberRoleRemoveFunc(guildID, userID, roleID)
	}
	return nil
}

func (f *FakeSession) ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64, _ ...discordgo.RequestOption) error {
	f.record("ChannelPermissionSet")
	if f.ChannelPermissionSetFunc != nil {
		return f.ChannelPermissionSetFunc(channelID, targetID, targetType, allow, deny)
	}
	return nil
}

var _ Session = (*FakeSession)(nil)
