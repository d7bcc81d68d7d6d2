package nsq

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/services/notifier/mocks"
	"github.com/stretchr/testify/assert"
)

func TestHandleEmailEvent(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		mockSetup func(uc *mocks.MockNotifierUC)
	}{
		{
			name: "Delivers decoded event",
			body: `{"id":"evt-1","kind":"welcome","recipient":"ada@example.com","first_name":"Ada"}`,
			mockSetup: func(uc *mocks.MockNotifierUC) {
				uc.EXPECT().
					DeliverEmail(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, event *models.EmailEvent) error {
						assert.Equal(t, "evt-1", event.ID)
						assert.Equal(t, models.EmailKindWelcome, event.Kind)
						assert.Equal(t, "ada@example.com", event.Recipient)
						return nil
					})
			},
		},
		{
			name: "Delivery failure is dropped",
			body: `{"id":"evt-2","kind":"otp","recipient":"ada@example.com"}`,
			mockSetup: func(uc *mocks.MockNotifierUC) {
				uc.EXPECT().
					DeliverEmail(gomock.Any(), gomock.Any()).
					Return(errors.New("retry limit exceeded"))
			},
		},
		{
			name:      "Undecodable body is dropped",
			body:      `{"id":`,
			mockSetup: func(uc *mocks.MockNotifierUC) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := mocks.NewMockNotifierUC(ctrl)
			tt.mockSetup(uc)
			h := NewEmailHandler(uc, nil)

			// Act
			err := h.handleEmailEvent([]byte(tt.body))

			// Assert
			assert.NoError(t, err, "email events are never requeued")
		})
	}
}

func TestInitNSQConsumers_InvalidTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewEmailHandler(mocks.NewMockNotifierUC(ctrl), nil)

	err := h.InitNSQConsumers(models.NSQConfig{EmailTopic: "bad topic!", EmailChannel: "notifier"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create email consumer")
}
