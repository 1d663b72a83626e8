package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DanRulev/quizbot.git/internal/models"
	mock_repository "github.com/DanRulev/quizbot.git/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passThroughRebind(mqi *mock_repository.MockQueryI) {
	mqi.EXPECT().Rebind(gomock.Any()).DoAndReturn(func(q string) string { return q }).AnyTimes()
}

func newAnswersMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *AnswersR {
	db := mock_repository.NewMockQueryI(ctrl)
	passThroughRebind(db)
	if setupMock != nil {
		setupMock(db)
	}

	return &AnswersR{db: db}
}

func TestAnswersR_SaveAnswer(t *testing.T) {
	t.Parallel()

	answer := models.Answer{ChatID: 7, QuestionIndex: 2, AnswerKey: "B"}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(7), 2, "B").Return(nil, nil)
			},
			wantErr: false,
		},
		{
			name: "error exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(7), 2, "B").Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newAnswersMock(t, ctrl, tt.f)

			err := repo.SaveAnswer(context.Background(), answer)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestAnswersR_Answers(t *testing.T) {
	t.Parallel()

	stored := []models.Answer{
		{ChatID: 7, QuestionIndex: 0, AnswerKey: "A"},
		{ChatID: 7, QuestionIndex: 1, AnswerKey: "C"},
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    []models.Answer
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), int64(7)).DoAndReturn(
					func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*[]models.Answer) = stored
						return nil
					})
			},
			want: stored,
		},
		{
			name: "success: empty",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), int64(7)).Return(nil)
			},
			want: []models.Answer{},
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), int64(7)).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newAnswersMock(t, ctrl, tt.f)

			got, err := repo.Answers(context.Background(), 7)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnswersR_ClearAnswers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(7)).Return(nil, nil)
			},
		},
		{
			name: "error exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(7)).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newAnswersMock(t, ctrl, tt.f)

			err := repo.ClearAnswers(context.Background(), 7)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}
