package userservice

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Users is the persistence surface the auth core and the controllers
// share. The auth path only ever reads; registration is the single write.
type Users interface {
	repository.Repository[*User]

	GetByIdentifier(ctx context.Context, identifier string, criteria ...repository.SelectCriteria) (*User, error)
	GetByUserID(ctx context.Context, userID string) (*User, error)
	List(ctx context.Context, page, limit int) ([]*User, error)
	FindUsersWithEmailEndingWith(ctx context.Context, emailDomain string) ([]*User, error)

	Register(ctx context.Context, user *User) (*User, error)
	RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error)
	Create(ctx context.Context, record *User, criteria ...repository.InsertCriteria) (*User, error)
	CreateTx(ctx context.Context, tx bun.IDB, record *User, criteria ...repository.InsertCriteria) (*User, error)
}

type users struct {
	repository.Repository[*User]
	db *bun.DB
}

var (
	_ Users                        = (*users)(nil)
	_ repository.Repository[*User] = (*users)(nil)
)

func NewUsersRepository(db *bun.DB) Users {
	repo := repository.NewRepository[*User](db, repository.ModelHandlers[*User]{
		NewRecord: func() *User { return &User{} },
		GetID: func(u *User) uuid.UUID {
			if u == nil {
				return uuid.Nil
			}
			return u.ID
		},
		SetID: func(u *User, id uuid.UUID) {
			if u != nil {
				u.ID = id
			}
		},
		GetIdentifier: func() string {
			return "email"
		},
	})

	return &users{
		Repository: repo,
		db:         db,
	}
}

func (a *users) Register(ctx context.Context, user *User) (*User, error) {
	return a.RegisterTx(ctx, a.db, user)
}

func (a *users) RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error) {
	return a.CreateTx(ctx, tx, user)
}

func (a *users) GetByIdentifier(ctx context.Context, identifier string, criteria ...repository.SelectCriteria) (*User, error) {
	return a.getByIdentifierTx(ctx, a.db, identifier, criteria...)
}

func (a *users) getByIdentifierTx(ctx context.Context, tx bun.IDB, identifier string, criteria ...repository.SelectCriteria) (*User, error) {
	options := resolveUserIdentifier(identifier)

	for _, opt := range options {
		record := &User{}
		q := tx.NewSelect().Model(record)

		for _, c := range criteria {
			q.Apply(c)
		}

		err := q.
			Where(fmt.Sprintf("?TableAlias.%s = ?", opt.column), opt.value).
			Limit(1).
			Scan(ctx)

		if err != nil {
			if repository.IsRecordNotFound(err) {
				continue
			}
			return nil, err
		}

		return record, nil
	}

	return nil, repository.NewRecordNotFound().
		WithMetadata(map[string]any{
			"identifier": identifier,
		})
}

func (a *users) GetByUserID(ctx context.Context, userID string) (*User, error) {
	id, err := uuid.Parse(strings.TrimSpace(userID))
	if err != nil {
		return nil, repository.NewRecordNotFound().
			WithMetadata(map[string]any{
				"user_id": userID,
			})
	}

	record := &User{}
	err = a.db.NewSelect().Model(record).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"user_id": userID,
				})
		}
		return nil, err
	}

	return record, nil
}

// List returns one page of users ordered by creation time. page is zero
// based; callers deal with the public 1-based convention.
func (a *users) List(ctx context.Context, page, limit int) ([]*User, error) {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 2
	}

	records := []*User{}
	err := a.db.NewSelect().Model(&records).
		Order("created_at ASC").
		Limit(limit).
		Offset(page * limit).
		Scan(ctx)

	if err != nil {
		return nil, err
	}

	return records, nil
}

func (a *users) FindUsersWithEmailEndingWith(ctx context.Context, emailDomain string) ([]*User, error) {
	records := []*User{}
	err := a.db.NewSelect().Model(&records).
		Where("?TableAlias.email LIKE ?", "%"+emailDomain).
		Scan(ctx)

	if err != nil {
		return nil, err
	}

	return records, nil
}

func (a *users) Create(ctx context.Context, record *User, criteria ...repository.InsertCriteria) (*User, error) {
	return a.CreateTx(ctx, a.db, record, criteria...)
}

func (a *users) CreateTx(ctx context.Context, tx bun.IDB, record *User, criteria ...repository.InsertCriteria) (*User, error) {
	prepareUserDefaults(record)
	return a.Repository.CreateTx(ctx, tx, record, criteria...)
}

type identifierOption struct {
	column string
	value  string
}

// resolveUserIdentifier maps a lookup string to the columns worth trying,
// most specific first.
func resolveUserIdentifier(identifier string) []identifierOption {
	identifier = strings.TrimSpace(identifier)

	if _, err := mail.ParseAddress(identifier); err == nil {
		return []identifierOption{{column: "email", value: identifier}}
	}

	if _, err := uuid.Parse(identifier); err == nil {
		return []identifierOption{{column: "id", value: identifier}}
	}

	return []identifierOption{
		{column: "username", value: identifier},
		{column: "email", value: identifier},
	}
}
