package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hr-portal/internal/dto"
	"github.com/noah-isme/hr-portal/internal/models"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

func sampleAccounts() []models.UserCredentials {
	return []models.UserCredentials{
		{ID: 1, FirstName: "Ana", LastName: "Reyes", Username: "ana", Password: "secret-1", DepartmentName: "Finance", RoleName: "Admin"},
		{ID: 2, FirstName: "Ben", LastName: "Santos", Username: "ben", Password: "secret-2", DepartmentName: "Operations", RoleName: "HR"},
		{ID: 3, FirstName: "Carla", LastName: "Diaz", Username: "carla", Password: "secret-3", DepartmentName: "Finance", RoleName: "Employee"},
		{ID: 4, FirstName: "Dino", LastName: "Cruz", Username: "dino", Password: "secret-4", DepartmentName: "Operations", RoleName: "Employee"},
	}
}

func validRegistration() dto.RegisterAccountRequest {
	return dto.RegisterAccountRequest{
		FirstName:    "Ella",
		LastName:     "Mae-Tan",
		Email:        "ella@example.com",
		Phone:        "09171234567",
		Username:     "ella.tan",
		Password:     "longenough_1",
		DepartmentID: 1,
		RoleID:       3,
	}
}

func newAccountServiceForTest() (*AccountService, *fakeRepo[models.UserCredentials]) {
	repo := &fakeRepo[models.UserCredentials]{
		items:  sampleAccounts(),
		result: &models.UserCredentials{ID: 5, Username: "ella.tan", Password: "longenough_1"},
	}
	return NewAccountService(repo, fakeReference{data: sampleReference()}, testStore(), nil, nil, nil), repo
}

func TestAccountListStripsPasswords(t *testing.T) {
	svc, _ := newAccountServiceForTest()
	v := svc.View(context.Background(), alice)
	require.Len(t, v.Items, 4)
	for _, item := range v.Items {
		assert.Empty(t, item.Password)
	}
}

func TestAccountSetRole(t *testing.T) {
	svc, _ := newAccountServiceForTest()
	ctx := context.Background()

	v, err := svc.SetRole(ctx, alice, "Employee")
	require.NoError(t, err)
	assert.Equal(t, 2, v.TotalItems)

	svc.SetSearchTerm(ctx, alice, "finance")
	v = svc.View(ctx, alice)
	require.Len(t, v.Items, 1)
	assert.Equal(t, "carla", v.Items[0].Username)

	v, err = svc.SetRole(ctx, alice, "")
	require.NoError(t, err)
	assert.Equal(t, 2, v.TotalItems)

	_, err = svc.SetRole(ctx, alice, "Owner")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestAccountRegister(t *testing.T) {
	svc, repo := newAccountServiceForTest()

	created, err := svc.Register(context.Background(), alice, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Empty(t, created.Password)
	require.Len(t, repo.created, 1)
	payload := repo.created[0].(models.UserCredentials)
	assert.Equal(t, "longenough_1", payload.Password)
	assert.Equal(t, 1, repo.calls())
}

func TestAccountRegisterValidation(t *testing.T) {
	svc, repo := newAccountServiceForTest()
	req := validRegistration()
	req.Phone = "+639171234567"
	req.FirstName = "Ella2"

	_, err := svc.Register(context.Background(), alice, req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	msg := appErrors.Message(err)
	assert.Contains(t, msg, "invalid account:")
	assert.Contains(t, msg, "phone must be 11 digits starting with 09")
	assert.Contains(t, msg, "first_name may only contain letters")
	assert.Empty(t, repo.created)
}

func TestAccountRegisterChecksReferences(t *testing.T) {
	svc, _ := newAccountServiceForTest()
	req := validRegistration()
	req.DepartmentID = 99

	_, err := svc.Register(context.Background(), alice, req)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Contains(t, appErrors.Message(err), "department_id")

	req = validRegistration()
	req.RoleID = 99
	_, err = svc.Register(context.Background(), alice, req)
	assert.Contains(t, appErrors.Message(err), "role_id")
}

func TestAccountUpdateKeepsEmptyPasswordOptional(t *testing.T) {
	svc, repo := newAccountServiceForTest()
	reg := validRegistration()
	req := dto.UpdateAccountRequest{
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Email:        reg.Email,
		Phone:        reg.Phone,
		Username:     reg.Username,
		DepartmentID: 2,
		RoleID:       2,
	}

	updated, err := svc.Update(context.Background(), alice, "5", req)
	require.NoError(t, err)
	assert.Empty(t, updated.Password)
	assert.Contains(t, repo.updated, "5")
}

func TestAccountDeleteGuardsSelf(t *testing.T) {
	svc, repo := newAccountServiceForTest()
	admin := Session{UserID: "1", Role: models.RoleAdmin}

	err := svc.Delete(context.Background(), admin, "1")
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
	assert.Empty(t, repo.deleted)

	require.NoError(t, svc.Delete(context.Background(), admin, "3"))
	assert.Equal(t, []string{"3"}, repo.deleted)
}
