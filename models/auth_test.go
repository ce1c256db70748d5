package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors_UnmarshalJSON(t *testing.T) {
	body := `{"errors":{"email":"already taken","password":["too short","no digit"],"age":18}}`

	var resp AuthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, "already taken", resp.Errors["email"])
	assert.Equal(t, "too short; no digit", resp.Errors["password"])
	assert.Equal(t, "18", resp.Errors["age"])
}

func TestFieldErrors_UnmarshalJSON_NotAnObject(t *testing.T) {
	var f FieldErrors
	assert.Error(t, json.Unmarshal([]byte(`["x"]`), &f))
}

func TestAdminLevel_IsAdmin(t *testing.T) {
	tests := []struct {
		level AdminLevel
		want  bool
	}{
		{level: AdminLevelSuperAdmin, want: true},
		{level: AdminLevelAdmin, want: true},
		{level: AdminLevelModerator, want: true},
		{level: AdminLevelNone, want: false},
		{level: "", want: false},
		{level: "editor", want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.IsAdmin())
			assert.Equal(t, tt.want, User{AdminLevel: tt.level}.IsAdmin())
		})
	}
}

func TestAuthResult_Locked(t *testing.T) {
	assert.False(t, AuthResult{}.Locked())
	assert.False(t, AuthResult{FailedAttempts: LockoutThreshold - 1}.Locked())
	assert.True(t, AuthResult{FailedAttempts: LockoutThreshold}.Locked())
	assert.True(t, AuthResult{AccountLocked: true}.Locked())
}

func TestPage_HasNext(t *testing.T) {
	assert.True(t, Page[Story]{Page: 1, TotalPages: 2}.HasNext())
	assert.False(t, Page[Story]{Page: 2, TotalPages: 2}.HasNext())
	assert.False(t, Page[Story]{}.HasNext())
}

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "", "abc")

	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: N/A")
}
