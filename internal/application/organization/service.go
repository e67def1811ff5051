// Package organization manages groups, memberships, and site-wide roles on
// behalf of the management page. Every operation is a thin, validated pass
// through to the CRM backend, which owns the actual access rules.
package organization

import (
	"context"
	"strings"

	"reachdesk/internal/domain/contact"
	"reachdesk/internal/shared/errors"
	"reachdesk/internal/shared/logger"
)

// Gateway is the groups-and-roles slice of the CRM backend API.
type Gateway interface {
	ListGroups(ctx context.Context) ([]contact.Group, error)
	CreateGroup(ctx context.Context, name string) (*contact.Group, error)
	DeleteGroup(ctx context.Context, gid int) error
	ListMemberships(ctx context.Context, gid int) ([]contact.Membership, error)
	AddMembership(ctx context.Context, did string, gid int, access contact.GroupAccess) (*contact.Membership, error)
	UpdateMembership(ctx context.Context, id int, access contact.GroupAccess) (*contact.Membership, error)
	RemoveMembership(ctx context.Context, id int) error
	ListGeneralRoles(ctx context.Context) ([]contact.GeneralRole, error)
	GrantGeneralRole(ctx context.Context, did string, level contact.RoleLevel) (*contact.GeneralRole, error)
	UpdateGeneralRole(ctx context.Context, id int, level contact.RoleLevel) (*contact.GeneralRole, error)
	RevokeGeneralRole(ctx context.Context, id int) error
}

type Service struct {
	gateway Gateway
	logger  logger.Interface
}

func NewService(gateway Gateway, logger logger.Interface) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger,
	}
}

func (s *Service) ListGroups(ctx context.Context) ([]contact.Group, error) {
	return s.gateway.ListGroups(ctx)
}

func (s *Service) CreateGroup(ctx context.Context, name string) (*contact.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("group name is required")
	}

	group, err := s.gateway.CreateGroup(ctx, name)
	if err != nil {
		s.logger.Errorw("failed to create group", "name", name, "error", err)
		return nil, err
	}
	s.logger.Infow("group created", "gid", group.GID, "name", group.Name)
	return group, nil
}

func (s *Service) DeleteGroup(ctx context.Context, gid int) error {
	if gid <= 0 {
		return errors.NewValidationError("group ID is required")
	}

	if err := s.gateway.DeleteGroup(ctx, gid); err != nil {
		s.logger.Errorw("failed to delete group", "gid", gid, "error", err)
		return err
	}
	s.logger.Infow("group deleted", "gid", gid)
	return nil
}

func (s *Service) ListMemberships(ctx context.Context, gid int) ([]contact.Membership, error) {
	if gid <= 0 {
		return nil, errors.NewValidationError("group ID is required")
	}
	return s.gateway.ListMemberships(ctx, gid)
}

func (s *Service) AddMembership(ctx context.Context, did string, gid int, access int) (*contact.Membership, error) {
	if did == "" {
		return nil, errors.NewValidationError("person ID is required")
	}
	if gid <= 0 {
		return nil, errors.NewValidationError("group ID is required")
	}
	level, err := contact.NewGroupAccess(access)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	membership, err := s.gateway.AddMembership(ctx, did, gid, level)
	if err != nil {
		s.logger.Errorw("failed to add membership", "did", did, "gid", gid, "error", err)
		return nil, err
	}
	s.logger.Infow("membership added", "id", membership.ID, "did", did, "gid", gid, "access", level.Display())
	return membership, nil
}

func (s *Service) UpdateMembership(ctx context.Context, id int, access int) (*contact.Membership, error) {
	if id <= 0 {
		return nil, errors.NewValidationError("membership ID is required")
	}
	level, err := contact.NewGroupAccess(access)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	membership, err := s.gateway.UpdateMembership(ctx, id, level)
	if err != nil {
		s.logger.Errorw("failed to update membership", "id", id, "error", err)
		return nil, err
	}
	s.logger.Infow("membership updated", "id", id, "access", level.Display())
	return membership, nil
}

func (s *Service) RemoveMembership(ctx context.Context, id int) error {
	if id <= 0 {
		return errors.NewValidationError("membership ID is required")
	}

	if err := s.gateway.RemoveMembership(ctx, id); err != nil {
		s.logger.Errorw("failed to remove membership", "id", id, "error", err)
		return err
	}
	s.logger.Infow("membership removed", "id", id)
	return nil
}

func (s *Service) ListGeneralRoles(ctx context.Context) ([]contact.GeneralRole, error) {
	return s.gateway.ListGeneralRoles(ctx)
}

func (s *Service) GrantGeneralRole(ctx context.Context, did string, level int) (*contact.GeneralRole, error) {
	if did == "" {
		return nil, errors.NewValidationError("person ID is required")
	}
	roleLevel, err := contact.NewRoleLevel(level)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	role, err := s.gateway.GrantGeneralRole(ctx, did, roleLevel)
	if err != nil {
		s.logger.Errorw("failed to grant role", "did", did, "error", err)
		return nil, err
	}
	s.logger.Infow("role granted", "id", role.ID, "did", did, "level", roleLevel.Display())
	return role, nil
}

func (s *Service) UpdateGeneralRole(ctx context.Context, id int, level int) (*contact.GeneralRole, error) {
	if id <= 0 {
		return nil, errors.NewValidationError("role ID is required")
	}
	roleLevel, err := contact.NewRoleLevel(level)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	role, err := s.gateway.UpdateGeneralRole(ctx, id, roleLevel)
	if err != nil {
		s.logger.Errorw("failed to update role", "id", id, "error", err)
		return nil, err
	}
	s.logger.Infow("role updated", "id", id, "level", roleLevel.Display())
	return role, nil
}

func (s *Service) RevokeGeneralRole(ctx context.Context, id int) error {
	if id <= 0 {
		return errors.NewValidationError("role ID is required")
	}

	if err := s.gateway.RevokeGeneralRole(ctx, id); err != nil {
		s.logger.Errorw("failed to revoke role", "id", id, "error", err)
		return err
	}
	s.logger.Infow("role revoked", "id", id)
	return nil
}
