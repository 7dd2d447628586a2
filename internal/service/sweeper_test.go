package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/service"
	"shortlink/internal/service/mocks"
)

func TestSweeperRunsBothTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	links := mocks.NewMockLinkStore(ctrl)
	subs := mocks.NewMockSubscriptionStore(ctrl)
	sw := service.NewSweeper(links, subs)

	links.EXPECT().ExpireLinks(gomock.Any(), gomock.Any()).Return(int64(3), nil)
	subs.EXPECT().DowngradeLapsed(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	require.NoError(t, sw.RunOnce(context.Background()))
}

// Expiry is idempotent: a second sweep has nothing left to transition.
func TestSweeperIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	links := mocks.NewMockLinkStore(ctrl)
	subs := mocks.NewMockSubscriptionStore(ctrl)
	sw := service.NewSweeper(links, subs)

	gomock.InOrder(
		links.EXPECT().ExpireLinks(gomock.Any(), gomock.Any()).Return(int64(5), nil),
		links.EXPECT().ExpireLinks(gomock.Any(), gomock.Any()).Return(int64(0), nil),
	)
	subs.EXPECT().DowngradeLapsed(gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(2)

	require.NoError(t, sw.RunOnce(context.Background()))
	require.NoError(t, sw.RunOnce(context.Background()))
}

// One failing transition does not stop the other, and the error still
// surfaces for the tick to log.
func TestSweeperLinkFailureStillSweepsSubscriptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	links := mocks.NewMockLinkStore(ctrl)
	subs := mocks.NewMockSubscriptionStore(ctrl)
	sw := service.NewSweeper(links, subs)

	links.EXPECT().ExpireLinks(gomock.Any(), gomock.Any()).Return(int64(0), assert.AnError)
	subs.EXPECT().DowngradeLapsed(gomock.Any(), gomock.Any()).Return(int64(2), nil)

	assert.Error(t, sw.RunOnce(context.Background()))
}
