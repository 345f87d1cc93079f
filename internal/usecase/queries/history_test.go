//go:build unit

package queries_test

import (
	"context"
	"testing"

	"parking-app/internal/infra"
	"parking-app/internal/mock/queriesmock"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistoryQueries_ListByUser(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		setup   func(users *queriesmock.MockUserReadStore, history *queriesmock.MockHistoryReadStore)
		want    []*queries.BillingView
		wantErr error
	}{
		{
			name: "returns rows from the store",
			setup: func(users *queriesmock.MockUserReadStore, history *queriesmock.MockHistoryReadStore) {
				users.EXPECT().FindByID(gomock.Any(), gomock.Any(), userID).Return(&queries.UserView{ID: userID}, nil)
				history.EXPECT().ListByUser(gomock.Any(), gomock.Any(), userID, 0).
					Return([]*queries.BillingView{{LotName: "Central"}}, nil)
			},
			want: []*queries.BillingView{{LotName: "Central"}},
		},
		{
			name: "unknown user",
			setup: func(users *queriesmock.MockUserReadStore, _ *queriesmock.MockHistoryReadStore) {
				users.EXPECT().FindByID(gomock.Any(), gomock.Any(), userID).
					Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))
			},
			wantErr: queries.ErrUserNotFound,
		},
		{
			name: "store failure",
			setup: func(users *queriesmock.MockUserReadStore, history *queriesmock.MockHistoryReadStore) {
				users.EXPECT().FindByID(gomock.Any(), gomock.Any(), userID).Return(&queries.UserView{ID: userID}, nil)
				history.EXPECT().ListByUser(gomock.Any(), gomock.Any(), userID, 0).Return(nil, errs.New("timeout"))
			},
			wantErr: queries.ErrDatabaseOperationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := queriesmock.NewMockUserReadStore(ctrl)
			history := queriesmock.NewMockHistoryReadStore(ctrl)
			tt.setup(users, history)

			sut := queries.NewHistoryQueries(passthroughUoW{}, users, history)
			got, err := sut.ListByUser(context.Background(), userID)
			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
