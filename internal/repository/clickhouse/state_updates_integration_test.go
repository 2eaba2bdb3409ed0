package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"
	"github.com/byteZorvin/piltover/internal/model"
)

func (s *RepositorySuite) TestInsertStateUpdates() {
	now := time.Now().UTC().Truncate(time.Second)
	updates := []model.StateUpdateRecord{
		newStateUpdate(10, "0x7", now),
		newStateUpdate(11, "0x8", now.Add(time.Second)),
	}

	s.metrics.EXPECT().Observe("insert_state_updates", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertStateUpdates(s.testCtx, updates))
	s.Equal(uint64(len(updates)), s.countRows("appchain_state_updates"))
}

func (s *RepositorySuite) TestLatestStateUpdateEmpty() {
	s.metrics.EXPECT().Observe("latest_state_update", gomock.Nil(), gomock.Any()).Times(1)

	_, found, err := s.repo.LatestStateUpdate(s.testCtx)
	s.Require().NoError(err)
	s.False(found)
}

func (s *RepositorySuite) TestLatestStateUpdateReturnsHighestBlock() {
	now := time.Now().UTC().Truncate(time.Second)
	updates := []model.StateUpdateRecord{
		newStateUpdate(10, "0x7", now),
		newStateUpdate(12, "0x9", now.Add(2*time.Second)),
		newStateUpdate(11, "0x8", now.Add(time.Second)),
	}

	s.metrics.EXPECT().Observe("insert_state_updates", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("latest_state_update", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertStateUpdates(s.testCtx, updates))

	got, found, err := s.repo.LatestStateUpdate(s.testCtx)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(int64(12), got.BlockNumber.Int64())
	s.Equal("0x9", got.NewRoot)
	s.Equal("0xfeed", got.Operator)
}

func (s *RepositorySuite) TestStateUpdatesNewestFirst() {
	now := time.Now().UTC().Truncate(time.Second)
	updates := []model.StateUpdateRecord{
		newStateUpdate(10, "0x7", now),
		newStateUpdate(11, "0x8", now.Add(time.Second)),
		newStateUpdate(12, "0x9", now.Add(2*time.Second)),
	}

	s.metrics.EXPECT().Observe("insert_state_updates", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("state_updates", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertStateUpdates(s.testCtx, updates))

	got, err := s.repo.StateUpdates(s.testCtx, 2)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(int64(12), got[0].BlockNumber.Int64())
	s.Equal(int64(11), got[1].BlockNumber.Int64())
}
