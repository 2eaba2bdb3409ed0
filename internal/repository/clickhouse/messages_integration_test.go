package clickhouse

import (
	"math/big"

	"github.com/golang/mock/gomock"
	"github.com/byteZorvin/piltover/internal/model"
)

func (s *RepositorySuite) TestInsertMessagesToStarknet() {
	messages := []model.StarknetMessageRecord{
		{
			BlockNumber:  big.NewInt(10),
			MessageIndex: 0,
			FromAddress:  "0x1",
			ToAddress:    "0x2",
			Payload:      []string{"0x3", "0x4"},
		},
		{
			BlockNumber:  big.NewInt(10),
			MessageIndex: 1,
			FromAddress:  "0x5",
			ToAddress:    "0x6",
			Payload:      nil,
		},
	}

	s.metrics.EXPECT().Observe("insert_messages_to_starknet", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertMessagesToStarknet(s.testCtx, messages))
	s.Equal(uint64(len(messages)), s.countRows("appchain_messages_to_starknet"))
}

func (s *RepositorySuite) TestInsertMessagesToAppchain() {
	messages := []model.AppchainMessageRecord{
		{
			BlockNumber:  big.NewInt(10),
			MessageIndex: 0,
			FromAddress:  "0x1",
			ToAddress:    "0x2",
			Nonce:        "0x7",
			Selector:     "0x8",
			Payload:      []string{"0x9"},
		},
	}

	s.metrics.EXPECT().Observe("insert_messages_to_appchain", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertMessagesToAppchain(s.testCtx, messages))
	s.Equal(uint64(len(messages)), s.countRows("appchain_messages_to_appchain"))
}

func (s *RepositorySuite) TestMessagesToStarknetByBlockOrderedByIndex() {
	messages := []model.StarknetMessageRecord{
		{BlockNumber: big.NewInt(10), MessageIndex: 1, FromAddress: "0x5", ToAddress: "0x6", Payload: []string{"0xb"}},
		{BlockNumber: big.NewInt(10), MessageIndex: 0, FromAddress: "0x1", ToAddress: "0x2", Payload: []string{"0xa"}},
		{BlockNumber: big.NewInt(11), MessageIndex: 0, FromAddress: "0x7", ToAddress: "0x8", Payload: nil},
	}

	s.metrics.EXPECT().Observe("insert_messages_to_starknet", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("messages_to_starknet_by_block", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertMessagesToStarknet(s.testCtx, messages))

	got, err := s.repo.MessagesToStarknetByBlock(s.testCtx, big.NewInt(10))
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(uint32(0), got[0].MessageIndex)
	s.Equal("0x1", got[0].FromAddress)
	s.Equal(uint32(1), got[1].MessageIndex)
	s.Equal([]string{"0xb"}, got[1].Payload)
}
