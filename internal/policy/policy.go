// Package policy is the single authorization gate consulted by every
// endpoint. It maps (actor role, resource, action) to an allow/deny
// decision so role checks are not re-implemented per handler.
//
// Ownership is the second half of the model: actions marked owner-scoped
// here must be backed by a lookup filtered to the acting user (for
// example "job owned by actor with this id"). A miss on such a lookup is
// reported as not-found, never as forbidden, so the existence of another
// actor's resource is not leaked.
package policy

import (
	"errors"

	"github.com/MichaelTeekey/job-finder/internal/model"
)

// Resource identifies a protected resource kind.
type Resource string

// Action identifies an operation against a resource.
type Action string

// Resources guarded by the gate.
const (
	ResourceJob         Resource = "job"
	ResourceApplication Resource = "application"
	ResourceResume      Resource = "resume"
)

// Actions guarded by the gate.
const (
	ActionListApproved Action = "list-approved"
	ActionGetApproved  Action = "get-approved"
	ActionCreate       Action = "create"
	ActionListOwn      Action = "list-own"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
	ActionListPending  Action = "list-pending"
	ActionApprove      Action = "approve"
	ActionListForJob   Action = "list-for-job"
	ActionSetStatus    Action = "set-status"
)

var (
	// ErrUnauthenticated is returned when the action needs a logged in user and there is none.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when the user is logged in but the role does not permit the action.
	ErrForbidden = errors.New("user doesn't have permission to access")
	// ErrUnknownAction is returned for (resource, action) pairs outside the policy table.
	ErrUnknownAction = errors.New("unknown resource action")
)

// anyone marks actions open to unauthenticated callers.
var anyone []string

var rules = map[Resource]map[Action][]string{
	ResourceJob: {
		ActionListApproved: anyone,
		ActionGetApproved:  anyone,
		ActionCreate:       {model.RoleEmployer},
		ActionListOwn:      {model.RoleEmployer},
		ActionUpdate:       {model.RoleEmployer},
		ActionDelete:       {model.RoleEmployer},
		ActionListPending:  {model.RoleAdmin},
		ActionApprove:      {model.RoleAdmin},
	},
	ResourceApplication: {
		ActionCreate:     {model.RoleStudent},
		ActionListOwn:    {model.RoleStudent},
		ActionListForJob: {model.RoleEmployer},
		ActionSetStatus:  {model.RoleEmployer},
	},
	ResourceResume: {
		ActionCreate: {model.RoleStudent},
	},
}

// Authorize decides whether actor may perform action on the given resource
// kind. A nil actor stands for an unauthenticated caller. Ownership of the
// concrete resource instance is enforced separately by owner-scoped lookups.
func Authorize(actor *model.User, resource Resource, action Action) error {
	actions, ok := rules[resource]
	if !ok {
		return ErrUnknownAction
	}
	roles, ok := actions[action]
	if !ok {
		return ErrUnknownAction
	}

	if len(roles) == 0 {
		return nil
	}
	if actor == nil {
		return ErrUnauthenticated
	}
	for _, role := range roles {
		if actor.Role == role {
			return nil
		}
	}
	return ErrForbidden
}

// OwnsJob reports whether actor is the employer that created the job.
func OwnsJob(actor model.User, job model.Job) bool {
	return actor.Role == model.RoleEmployer && job.EmployerID == actor.ID
}
