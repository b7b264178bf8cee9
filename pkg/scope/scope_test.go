package scope

import (
	"context"
	"testing"

	"auth-srv/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAdmin(t *testing.T) {
	admin := jwt.Claims{Subject: "1", Email: "root@example.com", Name: "Root", IsAdmin: true}
	user := jwt.Claims{Subject: "2", Email: "bob@example.com", Name: "Bob"}

	tcs := map[string]struct {
		in       Principal
		wantKind Kind
		wantErr  error
	}{
		"admin claims": {
			in:       Authenticated(admin),
			wantKind: KindAdmin,
		},
		"already admin": {
			in:       ForClaims(admin),
			wantKind: KindAdmin,
		},
		"non-admin claims": {
			in:      Authenticated(user),
			wantErr: ErrForbidden,
		},
		"anonymous": {
			in:      Anonymous(),
			wantErr: ErrNoCredential,
		},
		"zero value": {
			in:      Principal{},
			wantErr: ErrNoCredential,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := RequireAdmin(tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, got.Kind())

			inClaims, _ := tc.in.Claims()
			gotClaims, ok := got.Claims()
			assert.True(t, ok)
			assert.Equal(t, inClaims, gotClaims)
		})
	}
}

func TestForClaims(t *testing.T) {
	assert.Equal(t, KindAdmin, ForClaims(jwt.Claims{IsAdmin: true}).Kind())
	assert.Equal(t, KindUser, ForClaims(jwt.Claims{}).Kind())
	assert.Equal(t, KindUser, Authenticated(jwt.Claims{IsAdmin: true}).Kind())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "anonymous", KindAnonymous.String())
	assert.Equal(t, "user", KindUser.String())
	assert.Equal(t, "admin", KindAdmin.String())
}

func TestContext(t *testing.T) {
	ctx := context.Background()

	p := GetPrincipalFromContext(ctx)
	assert.True(t, p.IsAnonymous())
	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)

	ctx = SetPrincipalToContext(ctx, Authenticated(jwt.Claims{Subject: "9"}))

	id, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "9", id)
}
