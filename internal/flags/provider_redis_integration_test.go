//go:build integration

package flags_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"filings-gateway/internal/flags"
	"filings-gateway/pkg/testutil/containers"
)

type RedisProviderSuite struct {
	suite.Suite
	redis *containers.RedisContainer
}

func TestRedisProviderSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisProviderSuite))
}

func (s *RedisProviderSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
}

func (s *RedisProviderSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisProviderSuite) TestFetchDecodesHashFields() {
	ctx := context.Background()
	s.Require().NoError(s.redis.Client.HSet(ctx, "filings:flags",
		"enable-digital-credentials", "true",
		"supported-dissolution-entities", `["BEN","CP","SP"]`,
		"banner-text", `"maintenance"`,
	).Err())

	p := flags.NewRedisProvider(s.redis.Client, "filings:flags")
	set, err := p.Fetch(ctx)
	s.Require().NoError(err)

	s.Equal(true, set["enable-digital-credentials"])
	s.Equal("maintenance", set["banner-text"])

	g := flags.NewGate()
	g.Init(ctx, p)
	s.True(g.RemoteLoaded())
	s.True(g.ListContains("supported-dissolution-entities", "SP"))
}

func (s *RedisProviderSuite) TestEmptyHashIsAnError() {
	p := flags.NewRedisProvider(s.redis.Client, "filings:flags")
	_, err := p.Fetch(context.Background())
	s.Error(err)

	g := flags.NewGate()
	g.Init(context.Background(), p)
	s.False(g.RemoteLoaded())
}
