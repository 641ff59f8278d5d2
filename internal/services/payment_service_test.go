package services

import (
	"testing"

	"lms_backend/internal/models"
	"lms_backend/internal/repositories"
	"lms_backend/internal/services/dto"
	"lms_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentFixture(t *testing.T) (*fakeCourseRepo, *fakeLessonRepo, *fakePaymentRepo, *fakeGateway, PaymentService) {
	t.Helper()

	courses := newFakeCourseRepo()
	lessons := newFakeLessonRepo()
	payments := &fakePaymentRepo{}
	gateway := &fakeGateway{}
	svc := NewPaymentService(payments, courses, lessons, gateway)
	return courses, lessons, payments, gateway, svc
}

func TestCreatePayment_ForCourse(t *testing.T) {
	t.Parallel()

	courses, _, payments, gateway, svc := paymentFixture(t)
	course := &models.Course{Name: "Go Basics"}
	require.NoError(t, courses.Create(course))

	resp, err := svc.Create("user-1", &dto.CreatePaymentRequest{
		PaidCourseID: &course.ID,
		Amount:       99.90,
		PaymentType:  "transfer",
	})
	require.NoError(t, err)

	assert.Equal(t, "cs_1", resp.SessionID)
	assert.Equal(t, "https://pay.example/cs_1", resp.PaymentLink)
	assert.Equal(t, 1, gateway.sessions)
	require.Len(t, payments.payments, 1)
	assert.Equal(t, "user-1", payments.payments[0].UserID)
}

func TestCreatePayment_RequiresExactlyOneTarget(t *testing.T) {
	t.Parallel()

	courses, lessons, payments, _, svc := paymentFixture(t)
	course := &models.Course{Name: "Go Basics"}
	require.NoError(t, courses.Create(course))
	owner := "user-1"
	lesson := &models.Lesson{Name: "Intro", OwnerID: &owner}
	require.NoError(t, lessons.Create(lesson))

	// Neither target.
	_, err := svc.Create("user-1", &dto.CreatePaymentRequest{Amount: 10, PaymentType: "cash"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)

	// Both targets.
	_, err = svc.Create("user-1", &dto.CreatePaymentRequest{
		PaidCourseID: &course.ID,
		PaidLessonID: &lesson.ID,
		Amount:       10,
		PaymentType:  "cash",
	})
	require.Error(t, err)

	assert.Empty(t, payments.payments)
}

func TestCreatePayment_UnknownTargetIs404(t *testing.T) {
	t.Parallel()

	_, _, payments, gateway, svc := paymentFixture(t)
	missing := "missing-id"

	_, err := svc.Create("user-1", &dto.CreatePaymentRequest{
		PaidCourseID: &missing,
		Amount:       10,
		PaymentType:  "cash",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	// The gateway was never touched.
	assert.Zero(t, gateway.products)
	assert.Empty(t, payments.payments)
}

func TestCreatePayment_GatewayFailureLeavesNoRow(t *testing.T) {
	t.Parallel()

	for _, step := range []string{"product", "price", "session"} {
		step := step
		t.Run(step, func(t *testing.T) {
			t.Parallel()

			courses, _, payments, gateway, svc := paymentFixture(t)
			gateway.failAtStep = step

			course := &models.Course{Name: "Go Basics"}
			require.NoError(t, courses.Create(course))

			_, err := svc.Create("user-1", &dto.CreatePaymentRequest{
				PaidCourseID: &course.ID,
				Amount:       10,
				PaymentType:  "transfer",
			})
			require.Error(t, err)

			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.CodeExternalServiceError, appErr.Code)
			assert.Equal(t, 502, appErr.HTTPCode)

			assert.Empty(t, payments.payments)
		})
	}
}

func TestListPayments_ScopedToCaller(t *testing.T) {
	t.Parallel()

	_, _, payments, _, svc := paymentFixture(t)
	payments.payments = []*models.Payment{
		{UserID: "user-1", Amount: 10, PaymentType: models.PaymentTypeCash},
		{UserID: "user-2", Amount: 20, PaymentType: models.PaymentTypeCash},
	}

	resp, err := svc.List("user-1", repositories.PaymentFilter{Page: 1, PageSize: 20})
	require.NoError(t, err)

	require.Len(t, resp.Payments, 1)
	assert.Equal(t, "user-1", resp.Payments[0].UserID)
}

func TestCheckStatus(t *testing.T) {
	t.Parallel()

	_, _, _, gateway, svc := paymentFixture(t)
	gateway.lastStatus = "complete"

	resp, err := svc.CheckStatus("cs_1")
	require.NoError(t, err)
	assert.Equal(t, "complete", resp.Status)
	assert.Equal(t, "cs_1", resp.SessionID)
}
