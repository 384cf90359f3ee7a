//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"contact-form-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// SubmissionPostgresTestSuite runs the repository against a real Postgres container
type SubmissionPostgresTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SubmissionRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *SubmissionPostgresTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSubmissionRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *SubmissionPostgresTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SubmissionPostgresTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *SubmissionPostgresTestSuite) TestCreateAndList() {
	ctx := context.Background()
	older := suite.factories.Submission.WithSubmittedAt(time.Now().Add(-time.Hour))
	newer := suite.factories.Submission.WithSubmittedAt(time.Now())
	newer.Name = "Žofie Dvořáková"

	suite.Require().NoError(suite.repo.Create(ctx, older))
	suite.Require().NoError(suite.repo.Create(ctx, newer))

	submissions, err := suite.repo.GetAll(ctx)
	suite.NoError(err)
	suite.Require().Len(submissions, 2)
	suite.Equal("Žofie Dvořáková", submissions[0].Name)
	suite.Equal(older.ID, submissions[1].ID)
}

func (suite *SubmissionPostgresTestSuite) TestMicrosecondTimestampRoundTrips() {
	ctx := context.Background()
	s := suite.factories.Submission.WithSubmittedAt(time.Date(2024, 5, 1, 10, 0, 0, 123456000, time.UTC))

	suite.Require().NoError(suite.repo.Create(ctx, s))

	got, err := suite.repo.GetByID(ctx, s.ID)
	suite.Require().NoError(err)
	suite.True(s.SubmittedAt.Equal(got.SubmittedAt))
	suite.Equal(s.ToLogEntry(), got.ToLogEntry())
}

func (suite *SubmissionPostgresTestSuite) TestColumnLimits() {
	ctx := context.Background()
	s := suite.factories.Submission.Create()
	s.PostalCode = "1234567"

	suite.Error(suite.repo.Create(ctx, s))

	total, err := suite.repo.Count(ctx)
	suite.NoError(err)
	suite.Zero(total)
}

func TestSubmissionPostgresTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionPostgresTestSuite))
}
