package postgres_test

import (
	"context"
	"testing"

	"github.com/iris-cmd22/A13/internal/repository/postgres"
	"github.com/iris-cmd22/A13/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(testDB.DB)
	ctx := context.Background()

	t.Run("Save round-trips follow lists", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		profile, err := repo.GetByUserID(ctx, user.ID)
		require.NoError(t, err)

		profile.AddFollower(10)
		profile.AddFollowing(20)
		require.NoError(t, repo.Save(ctx, profile))

		reloaded, err := repo.GetByID(ctx, profile.ID)
		require.NoError(t, err)
		testutil.AssertProfileContains(t, reloaded.FollowerIDs, 10)
		testutil.AssertProfileContains(t, reloaded.FollowingIDs, 20)
	})

	t.Run("SavePair persists both sides", func(t *testing.T) {
		testDB.Truncate(t)
		a, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		b, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		aProfile := testutil.ReloadProfile(t, testDB.DB, a.ID)
		bProfile := testutil.ReloadProfile(t, testDB.DB, b.ID)

		aProfile.AddFollowing(bProfile.ID)
		bProfile.AddFollower(aProfile.ID)

		require.NoError(t, repo.SavePair(ctx, aProfile, bProfile))

		aReloaded := testutil.ReloadProfile(t, testDB.DB, a.ID)
		bReloaded := testutil.ReloadProfile(t, testDB.DB, b.ID)
		testutil.AssertProfileContains(t, aReloaded.FollowingIDs, bProfile.ID)
		testutil.AssertProfileContains(t, bReloaded.FollowerIDs, aProfile.ID)
	})

	t.Run("empty lists stay empty", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		profile, err := repo.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, profile.FollowerIDs)
		assert.Empty(t, profile.FollowingIDs)
	})
}
