package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"

	"github.com/jose-valero/role-panel-bot/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memDirectory es un directorio en memoria con la semántica de Discord:
// add/remove de un rol son idempotentes y los overrides se reemplazan enteros.
type memDirectory struct {
	roles    map[string]domain.Role
	members  map[string][]string
	channels []domain.Channel

	failOverwrite map[string]error
	mutations     int
}

func newMemDirectory() *memDirectory {
	return &memDirectory{
		roles:         map[string]domain.Role{},
		members:       map[string][]string{},
		failOverwrite: map[string]error{},
	}
}

func (d *memDirectory) Role(_ context.Context, _ string, roleID string) (domain.Role, error) {
	r, ok := d.roles[roleID]
	if !ok {
		return domain.Role{}, ErrRoleNotFound
	}
	return r, nil
}

func (d *memDirectory) AddMemberRole(_ context.Context, _, userID, roleID string) error {
	d.mutations++
	if !slices.Contains(d.members[userID], roleID) {
		d.members[userID] = append(d.members[userID], roleID)
	}
	return nil
}

func (d *memDirectory) RemoveMemberRole(_ context.Context, _, userID, roleID string) error {
	d.mutations++
	d.members[userID] = slices.DeleteFunc(d.members[userID], func(id string) bool { return id == roleID })
	return nil
}

func (d *memDirectory) memberRoles(userID string) []string {
	return slices.Clone(d.members[userID])
}

func (d *memDirectory) Channels(context.Context, string) ([]domain.Channel, error) {
	return d.snapshot(), nil
}

func (d *memDirectory) SetRoleOverwrite(_ context.Context, channelID string, ow domain.Overwrite) error {
	if err, ok := d.failOverwrite[channelID]; ok {
		return err
	}
	d.mutations++
	for i := range d.channels {
		if d.channels[i].ID != channelID {
			continue
		}
		for j := range d.channels[i].Overwrites {
			if d.channels[i].Overwrites[j].RoleID == ow.RoleID {
				d.channels[i].Overwrites[j] = ow
				return nil
			}
		}
		d.channels[i].Overwrites = append(d.channels[i].Overwrites, ow)
		return nil
	}
	return errors.New("unknown channel")
}

func (d *memDirectory) snapshot() []domain.Channel {
	out := make([]domain.Channel, len(d.channels))
	for i, ch := range d.channels {
		ch.Overwrites = slices.Clone(ch.Overwrites)
		out[i] = ch
	}
	return out
}

func (d *memDirectory) overwrite(channelID, roleID string) (domain.Overwrite, bool) {
	for _, ch := range d.channels {
		if ch.ID == channelID {
			return ch.RoleOverwrite(roleID)
		}
	}
	return domain.Overwrite{}, false
}
