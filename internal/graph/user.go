package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/labtrack/labtrack/internal/auth"
	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/services"
)

type userResolver struct {
	base
	r *Resolver
	u *models.User
}

func (r *Resolver) user(u *models.User) *userResolver {
	return &userResolver{base: base{u.Base}, r: r, u: u}
}

func (x *userResolver) Email() string { return x.u.Email }
func (x *userResolver) Name() *string { return x.u.Name }
func (x *userResolver) Role() string { return string(x.u.Role) }

func (x *userResolver) Member(ctx context.Context) (*memberResolver, error) {
	return x.r.memberByID(ctx, x.u.MemberID)
}

type authPayloadResolver struct {
	r *Resolver
	p *services.AuthPayload
}

func (x *authPayloadResolver) Token() string { return x.p.Token }
func (x *authPayloadResolver) ExpiresAt() graphql.Time { return gqlTime(x.p.ExpiresAt) }
func (x *authPayloadResolver) User() *userResolver { return x.r.user(x.p.User) }

// Me returns the calling user, or null for anonymous callers and
// external identities without a local account
func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	id := auth.FromContext(ctx)
	if id == nil {
		return nil, r.authorize(ctx)
	}
	u, err := r.svc.Users.Me(ctx, id)
	if err != nil {
		return nil, orNil(err)
	}
	return r.user(u), nil
}

// Users lists accounts; admins only
func (r *Resolver) Users(ctx context.Context, args struct{ PageArgs }) ([]*userResolver, error) {
	if err := r.requireAdmin(ctx); err != nil {
		return nil, err
	}
	items, err := r.svc.Users.List(ctx, args.options())
	return wrapAll(items, r.user), err
}

// DeleteUser removes an account; admins only
func (r *Resolver) DeleteUser(ctx context.Context, args idArgs) (bool, error) {
	if err := r.requireAdmin(ctx); err != nil {
		return false, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return false, err
	}
	if err := r.svc.Users.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

type signUpInput struct {
	Email    string
	Password string
	Name     *string
	MemberID *graphql.ID
}

func (r *Resolver) SignUp(ctx context.Context, args struct{ Input signUpInput }) (*authPayloadResolver, error) {
	memberID, err := parseOptionalID(args.Input.MemberID)
	if err != nil {
		return nil, err
	}
	p, err := r.svc.Users.SignUp(ctx, services.SignUpInput{
		Email:    args.Input.Email,
		Password: args.Input.Password,
		Name:     args.Input.Name,
		MemberID: memberID,
	})
	if err != nil {
		return nil, err
	}
	return &authPayloadResolver{r: r, p: p}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct {
	Email    string
	Password string
}) (*authPayloadResolver, error) {
	p, err := r.svc.Users.Login(ctx, args.Email, args.Password)
	if err != nil {
		return nil, err
	}
	return &authPayloadResolver{r: r, p: p}, nil
}
