// Package service implements the client-side operations behind each screen.
// Services validate what the screens must not send, issue the remote calls,
// and leave rendering to the UI.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/splitmate/splitmate/internal/backend"
	"github.com/splitmate/splitmate/internal/models"
	"github.com/splitmate/splitmate/internal/session"
)

// ErrEmptyName is returned by CreateGroup when the name is empty after
// trimming. No network call is made in that case.
var ErrEmptyName = errors.New("group name must not be empty")

// FallbackGroupName labels groups whose name column is null.
const FallbackGroupName = "Group"

// GroupService creates groups and lists the ones visible to the current user.
type GroupService struct {
	api      *backend.Client
	sessions *session.Manager
}

// NewGroupService creates a GroupService bound to the given backend and
// session manager.
func NewGroupService(api *backend.Client, sessions *session.Manager) *GroupService {
	return &GroupService{api: api, sessions: sessions}
}

// CreateGroupResult is the outcome of a successful CreateGroup. MembershipErr
// is set when the group exists but adding the creator as a member failed; the
// caller should warn and proceed.
type CreateGroupResult struct {
	Group         *models.Group
	MembershipErr error
}

// CreateGroup creates a group owned by the current user and adds the creator
// as its first member.
//
// The two writes are sequential and deliberately not transactional: once the
// group row exists the flow commits to it, and a failed membership insert is
// reported through MembershipErr rather than rolling anything back. Blocking
// group creation on the secondary write would be worse than the occasional
// group the creator has to join manually.
func (s *GroupService) CreateGroup(ctx context.Context, name string) (*CreateGroupResult, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}

	user, err := s.sessions.User(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current user: %w", err)
	}

	slog.Info("creating group", "name", trimmed, "owner", user.ID)

	var group models.Group
	err = s.api.From("groups").
		Auth(s.sessions.Token()).
		Select("id, name").
		Single().
		Insert(ctx, struct {
			Name  string `json:"name"`
			Owner string `json:"owner"`
		}{Name: trimmed, Owner: user.ID}, &group)
	if err != nil {
		slog.Error("group insert failed", "name", trimmed, "error", err)
		return nil, err
	}

	result := &CreateGroupResult{Group: &group}

	err = s.api.From("group_members").
		Auth(s.sessions.Token()).
		Insert(ctx, models.Membership{GroupID: group.ID, UserID: user.ID}, nil)
	if err != nil {
		// The group is already committed; surface the partial failure.
		slog.Warn("membership insert failed", "group_id", group.ID, "user_id", user.ID, "error", err)
		result.MembershipErr = err
	}

	slog.Info("group created", "group_id", group.ID)
	return result, nil
}

// membershipRow is the shape of the membership⋈group join.
type membershipRow struct {
	GroupID string `json:"group_id"`
	Group   *struct {
		Name *string `json:"name"`
	} `json:"groups"`
}

// ListGroups returns the groups the current user belongs to, in the order the
// service returns them. Null names get the fallback label.
func (s *GroupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	user, err := s.sessions.User(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current user: %w", err)
	}

	var rows []membershipRow
	err = s.api.From("group_members").
		Auth(s.sessions.Token()).
		Select("group_id, groups(name)").
		Eq("user_id", user.ID).
		Get(ctx, &rows)
	if err != nil {
		return nil, err
	}

	groups := make([]models.Group, 0, len(rows))
	for _, row := range rows {
		name := FallbackGroupName
		if row.Group != nil && row.Group.Name != nil && *row.Group.Name != "" {
			name = *row.Group.Name
		}
		groups = append(groups, models.Group{ID: row.GroupID, Name: name})
	}
	return groups, nil
}
