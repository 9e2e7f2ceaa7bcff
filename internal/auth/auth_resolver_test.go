package auth_test

import (
	"testing"

	"go-yourtask/internal/account"
	"go-yourtask/internal/auth"
	autherrors "go-yourtask/internal/auth/errors"
	"go-yourtask/internal/session"
	"go-yourtask/internal/task"

	"github.com/stretchr/testify/assert"
)

var (
	opsAccounts = []account.Account{
		{Username: "rudi1", Name: "Rudi Hartono"},
	}
	courierAccounts = []account.Account{
		{Username: "BUDI2", Name: "Budi Santoso"},
		{Username: "sari7", Name: "Sari"},
	}
	activeTasks = []task.Task{
		{TaskID: "T1", FmsID: "FMS-1", CourierID: "BUDI2"},
	}
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		handle   string
		ops      []account.Account
		wantRole session.Role
		wantUser string
		wantErr  error
	}{
		{name: "ops exact", handle: "rudi1", wantRole: session.RoleOps, wantUser: "rudi1"},
		{name: "ops case-insensitive", handle: "RUDI1", wantRole: session.RoleOps, wantUser: "rudi1"},
		{name: "ops with surrounding spaces", handle: "  rudi1 ", wantRole: session.RoleOps, wantUser: "rudi1"},
		{name: "courier with task", handle: "BUDI2", wantRole: session.RoleKurir, wantUser: "BUDI2"},
		{name: "courier lowercase with task", handle: "budi2", wantRole: session.RoleKurir, wantUser: "BUDI2"},
		{name: "courier without task", handle: "sari7", wantErr: autherrors.ErrNoActiveTask},
		{name: "unknown", handle: "nouser", wantErr: autherrors.ErrUsernameNotRegistered},
		{name: "empty", handle: "   ", wantErr: autherrors.ErrEmptyUsername},
		{
			name:     "ops wins when handle is in both sets",
			handle:   "budi2",
			ops:      []account.Account{{Username: "budi2", Name: "Budi Ops"}},
			wantRole: session.RoleOps,
			wantUser: "budi2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := opsAccounts
			if tt.ops != nil {
				ops = tt.ops
			}

			got, err := auth.Resolve(tt.handle, ops, courierAccounts, activeTasks)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantRole, got.Role)
			assert.Equal(t, tt.wantUser, got.Username)
			assert.True(t, got.Valid())
		})
	}
}

func TestResolve_ErrorMessages(t *testing.T) {
	_, err := auth.Resolve("nouser", opsAccounts, courierAccounts, activeTasks)
	assert.EqualError(t, err, "Username 'nouser' tidak terdaftar.: Username tidak terdaftar.")

	_, err = auth.Resolve("sari7", opsAccounts, courierAccounts, activeTasks)
	assert.ErrorContains(t, err, "Username 'sari7' terdaftar tapi tidak ditemukan tugas aktif di kolom V.")
}

func TestResolve_TaskOnlyHandleIsNotRegistered(t *testing.T) {
	tasks := []task.Task{{TaskID: "T9", CourierID: "ghost9"}}

	_, err := auth.Resolve("ghost9", opsAccounts, courierAccounts, tasks)
	assert.ErrorIs(t, err, autherrors.ErrUsernameNotRegistered)
}
