package repositories

import (
	"path/filepath"
	"testing"

	"soc-archive-api/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type WorkRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo WorkRepository
}

func (suite *WorkRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(filepath.Join(suite.T().TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		suite.T().Fatal("failed to open test database:", err)
	}
	if err := db.AutoMigrate(&models.Work{}, &models.Category{}); err != nil {
		suite.T().Fatal("failed to migrate test database:", err)
	}

	suite.db = db
	suite.repo = NewWorkRepository(db)
}

func (suite *WorkRepositoryTestSuite) createWork(title, abstract, author, field string, year int, approved bool) *models.Work {
	work := &models.Work{
		Title:      title,
		Abstract:   abstract,
		AuthorName: author,
		Year:       year,
		Field:      field,
		Approved:   approved,
	}
	suite.NoError(suite.repo.Create(work))
	return work
}

func (suite *WorkRepositoryTestSuite) TestGetListExcludesUnapproved() {
	suite.createWork("Approved work", "abstract", "Alice", "Physics", 2023, true)
	suite.createWork("Pending work", "abstract", "Bob", "Physics", 2023, false)

	works, err := suite.repo.GetList(models.WorkListParams{})
	suite.NoError(err)
	suite.Len(works, 1)
	suite.Equal("Approved work", works[0].Title)
}

func (suite *WorkRepositoryTestSuite) TestGetListFieldExactMatch() {
	suite.createWork("Quantum effects", "abstract", "Alice", "Physics", 2023, true)
	suite.createWork("Catalysts", "abstract", "Bob", "Chemistry", 2023, true)

	works, err := suite.repo.GetList(models.WorkListParams{Field: "Physics"})
	suite.NoError(err)
	suite.Len(works, 1)
	suite.Equal("Quantum effects", works[0].Title)
}

func (suite *WorkRepositoryTestSuite) TestGetListSearchMatchesAbstract() {
	suite.createWork("Light studies", "Interaction of a photon with matter", "Alice", "Physics", 2023, true)
	suite.createWork("Sound studies", "Acoustic waves in solids", "Bob", "Physics", 2023, true)

	works, err := suite.repo.GetList(models.WorkListParams{Search: "photon"})
	suite.NoError(err)
	suite.Len(works, 1)
	suite.Equal("Light studies", works[0].Title)
}

func (suite *WorkRepositoryTestSuite) TestGetListSearchMatchesAcrossFields() {
	suite.createWork("Neutrino detection", "abstract one", "Alice", "Physics", 2023, true)
	suite.createWork("Ordinary title", "a neutrino appears here", "Bob", "Physics", 2023, true)
	suite.createWork("Unrelated", "nothing of note", "Carol", "Chemistry", 2023, true)

	works, err := suite.repo.GetList(models.WorkListParams{Search: "neutrino"})
	suite.NoError(err)
	suite.Len(works, 2)
}

func (suite *WorkRepositoryTestSuite) TestGetListFiltersCombineAsConjunction() {
	suite.createWork("Match", "thermodynamics study", "Alice", "Physics", 2023, true)
	suite.createWork("Wrong year", "thermodynamics study", "Bob", "Physics", 2022, true)
	suite.createWork("Wrong field", "thermodynamics study", "Carol", "Chemistry", 2023, true)

	works, err := suite.repo.GetList(models.WorkListParams{
		Search: "thermodynamics",
		Field:  "Physics",
		Year:   2023,
	})
	suite.NoError(err)
	suite.Len(works, 1)
	suite.Equal("Match", works[0].Title)
}

func (suite *WorkRepositoryTestSuite) TestGetListSchoolSubstringRegionExact() {
	grammar := "Central Grammar School"
	north := "North"
	work := suite.createWork("With school", "abstract", "Alice", "Physics", 2023, true)
	suite.NoError(suite.db.Model(work).Updates(map[string]interface{}{"school": grammar, "region": north}).Error)
	suite.createWork("No school", "abstract", "Bob", "Physics", 2023, true)

	works, err := suite.repo.GetList(models.WorkListParams{School: "Grammar"})
	suite.NoError(err)
	suite.Len(works, 1)

	works, err = suite.repo.GetList(models.WorkListParams{Region: "North"})
	suite.NoError(err)
	suite.Len(works, 1)

	works, err = suite.repo.GetList(models.WorkListParams{Region: "Nor"})
	suite.NoError(err)
	suite.Len(works, 0)
}

func (suite *WorkRepositoryTestSuite) TestAnonymizeClearsPersonalData() {
	email := "alice@example.com"
	work := suite.createWork("Work", "abstract", "Alice", "Physics", 2023, false)
	suite.NoError(suite.db.Model(work).Update("author_email", email).Error)

	suite.NoError(suite.repo.Anonymize(work.ID))

	stored, err := suite.repo.GetByID(work.ID)
	suite.NoError(err)
	suite.Equal(models.AnonymizedAuthor, stored.AuthorName)
	suite.Nil(stored.AuthorEmail)
}

func (suite *WorkRepositoryTestSuite) TestCounts() {
	suite.createWork("A", "abstract", "Alice", "Physics", 2023, true)
	suite.createWork("B", "abstract", "Bob", "Physics", 2023, false)
	suite.createWork("C", "abstract", "Carol", "Chemistry", 2024, true)

	total, err := suite.repo.CountAll()
	suite.NoError(err)
	suite.Equal(int64(3), total)

	approved, err := suite.repo.CountApproved()
	suite.NoError(err)
	suite.Equal(int64(2), approved)

	byYear, err := suite.repo.CountByYear()
	suite.NoError(err)
	suite.Equal(map[int]int64{2023: 2, 2024: 1}, byYear)

	byField, err := suite.repo.CountByField()
	suite.NoError(err)
	suite.Equal(map[string]int64{"Physics": 2, "Chemistry": 1}, byField)
}

func TestWorkRepositorySuite(t *testing.T) {
	suite.Run(t, new(WorkRepositoryTestSuite))
}
