package userservice

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
)

// HeaderUserID carries the public user id on login responses, paired
// with the Authorization header. Existing clients depend on both names.
const HeaderUserID = "UserID"

// UserRegistrar is the write side the controller needs
type UserRegistrar interface {
	Execute(ctx context.Context, event RegisterUserMessage) (*User, error)
}

// UserFinder is the read side the controller needs
type UserFinder interface {
	GetByUserID(ctx context.Context, userID string) (*User, error)
	List(ctx context.Context, page, limit int) ([]*User, error)
}

// UsersController exposes the user service over HTTP: registration and
// login are public, lookups require an authenticated caller.
type UsersController struct {
	Debug     bool
	Logger    Logger
	Auther    Authenticator
	Registrar UserRegistrar
	Finder    UserFinder
}

type UsersControllerOption func(*UsersController) *UsersController

func NewUsersController(opts ...UsersControllerOption) *UsersController {
	c := &UsersController{
		Logger: defLogger{},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Auther == nil {
		panic("Missing Authenticator in users controller...")
	}
	if c.Registrar == nil {
		panic("Missing UserRegistrar in users controller...")
	}
	if c.Finder == nil {
		panic("Missing UserFinder in users controller...")
	}

	return c
}

func WithAuthenticator(a Authenticator) UsersControllerOption {
	return func(c *UsersController) *UsersController {
		c.Auther = a
		return c
	}
}

func WithRegistrar(r UserRegistrar) UsersControllerOption {
	return func(c *UsersController) *UsersController {
		c.Registrar = r
		return c
	}
}

func WithFinder(f UserFinder) UsersControllerOption {
	return func(c *UsersController) *UsersController {
		c.Finder = f
		return c
	}
}

func WithControllerLogger(l Logger) UsersControllerOption {
	return func(c *UsersController) *UsersController {
		c.Logger = l
		return c
	}
}

// RegisterRoutes wires the controller into the app. guard is the access
// gate applied to protected routes; registration and login stay public.
func RegisterRoutes(app *fiber.App, controller *UsersController, guard fiber.Handler) {
	app.Post("/login", controller.LoginPost)
	app.Post("/users", controller.CreateUser)
	app.Get("/users/:userId", guard, controller.GetUser)
	app.Get("/users", guard, controller.GetUsers)
}

// LoginRequest payload
type LoginRequest struct {
	Identifier string `form:"identifier" json:"identifier"`
	Password   string `form:"password" json:"password"`
}

// GetIdentifier returns the identifier
func (r LoginRequest) GetIdentifier() string {
	return r.Identifier
}

// GetPassword will return the password
func (r LoginRequest) GetPassword() string {
	return r.Password
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Identifier,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

// LoginPost authenticates the payload and returns the signed token in the
// Authorization response header with the public user id alongside it.
// Unknown identifier and wrong password produce byte-identical responses.
func (a *UsersController) LoginPost(c *fiber.Ctx) error {
	payload := new(LoginRequest)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := a.Auther.Login(c.UserContext(), payload.GetIdentifier(), payload.GetPassword())
	if err != nil {
		if IsInvalidCredentialsError(err) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid credentials",
			})
		}

		a.Logger.Error("login infrastructure failure", "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "service unavailable",
		})
	}

	c.Set(fiber.HeaderAuthorization, "Bearer "+result.Token)
	c.Set(HeaderUserID, result.UserID)

	return c.JSON(fiber.Map{
		"user_id": result.UserID,
	})
}

// RegistrationCreatePayload is the registration payload
type RegistrationCreatePayload struct {
	FirstName       string `form:"first_name" json:"first_name"`
	LastName        string `form:"last_name" json:"last_name"`
	Username        string `form:"username" json:"username"`
	Email           string `form:"email" json:"email"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
}

// Validate will validate the payload
func (r RegistrationCreatePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
		validation.Field(
			&r.ConfirmPassword,
			validation.Required,
			validation.Length(8, 100),
			validation.By(validateStringEquals(r.Password)),
		),
	)
}

func validateStringEquals(expected string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s != expected {
			return goerrors.New("passwords do not match", goerrors.CategoryValidation)
		}
		return nil
	}
}

// UserResponse is the public representation of a user record
type UserResponse struct {
	ID        string     `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func toUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// CreateUser registers a new user
func (a *UsersController) CreateUser(c *fiber.Ctx) error {
	payload := new(RegistrationCreatePayload)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	user, err := a.Registrar.Execute(c.UserContext(), RegisterUserMessage{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Username:  payload.Username,
		Email:     payload.Email,
		Password:  payload.Password,
	})

	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) && richErr.Category == goerrors.CategoryConflict {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "record already exists",
			})
		}

		a.Logger.Error("user registration failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not create user",
		})
	}

	response := toUserResponse(user)

	if a.Debug {
		a.Logger.Debug("user created %s", print.MaybePrettyJSON(response))
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// GetUser fetches a user by public id
func (a *UsersController) GetUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	user, err := a.Finder.GetByUserID(c.UserContext(), userID)
	if err != nil {
		if goerrors.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "user not found",
			})
		}

		a.Logger.Error("user lookup failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not fetch user",
		})
	}

	return c.JSON(toUserResponse(user))
}

// GetUsers lists users. page is 1-based on the wire, limit defaults to 2
// to match the original pagination contract.
func (a *UsersController) GetUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	limit := c.QueryInt("limit", 2)

	if page > 0 {
		page -= 1
	}

	users, err := a.Finder.List(c.UserContext(), page, limit)
	if err != nil {
		a.Logger.Error("user listing failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not list users",
		})
	}

	response := make([]UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(u))
	}

	return c.JSON(response)
}
