//go:build unit

package user_test

import (
	"testing"

	"rental-core/internal/domain/user"
	"rental-core/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userView struct {
	Email       string
	Name        string
	CompanyName string
	GSTIN       user.GSTIN
	Address     string
	Role        user.Role
	IsActive    bool
}

func viewOf(u *user.User) userView {
	return userView{
		Email:       u.Email().Value(),
		Name:        u.Name(),
		CompanyName: u.CompanyName(),
		GSTIN:       u.GSTIN(),
		Address:     u.Address(),
		Role:        u.Role(),
		IsActive:    u.IsActive(),
	}
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("default customer", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("ravi@example.com")
		expected := user.NewUser(email, user.RoleCustomer, user.Profile{
			Name:    "Ravi Kumar",
			Address: "12 MG Road, Bengaluru",
		})

		if diff := cmp.Diff(viewOf(expected), viewOf(actual), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.Role().CanOperateRentals())
		assert.Equal(t, "Ravi Kumar", actual.DisplayName())
	})

	t.Run("vendor shows company name", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().AsVendor("Asha Rentals", "29abcde1234f1z5").BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.Role().CanOperateRentals())
		assert.Equal(t, "Asha Rentals", actual.DisplayName())
		assert.Equal(t, user.GSTIN("29ABCDE1234F1Z5"), actual.GSTIN())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing @ NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "customer OK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("customer") },
			},
			{
				name:   "vendor OK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("vendor") },
			},
			{
				name:   "admin OK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "unknown role NG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("gstin", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty GSTIN OK",
				mutate: func(b *builder.UserBuilder) { b.WithGSTIN("") },
			},
			{
				name:   "short GSTIN NG",
				mutate: func(b *builder.UserBuilder) { b.WithGSTIN("29ABC") },
				errIs:  user.ErrInvalidGSTIN,
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
