package vocab

// Stage is a company funding stage.
type Stage string

const (
	StageIdea    Stage = "Idea Stage"
	StageSeed    Stage = "Seed Stage"
	StageEarly   Stage = "Early Stage"
	StageGrowth  Stage = "Growth Stage"
	StageSeriesA Stage = "Series A"
	StageSeriesB Stage = "Series B"
	StageSeriesC Stage = "Series C"
	StageSeriesD Stage = "Series D+"
	StageExit    Stage = "Exit Stage"
)

var stages = lazy("stages", StageEarly,
	StageIdea,
	StageSeed,
	StageEarly,
	StageGrowth,
	StageSeriesA,
	StageSeriesB,
	StageSeriesC,
	StageSeriesD,
	StageExit,
)

// Stages returns the funding stage vocabulary. Fallback: Early Stage.
func Stages() *Vocabulary[Stage] { return stages() }

func (s *Stage) UnmarshalJSON(data []byte) error {
	label, err := labelFromJSON(data)
	*s = Stage(label)
	return err
}

// CompanyStage is a Stage that may also be left empty.
type CompanyStage string

// CompanyStageEmpty marks a company whose stage is not known yet.
const CompanyStageEmpty CompanyStage = ""

var companyStages = lazy("company_stages", CompanyStageEmpty,
	CompanyStage(StageIdea),
	CompanyStage(StageSeed),
	CompanyStage(StageEarly),
	CompanyStage(StageGrowth),
	CompanyStage(StageSeriesA),
	CompanyStage(StageSeriesB),
	CompanyStage(StageSeriesC),
	CompanyStage(StageSeriesD),
	CompanyStage(StageExit),
	CompanyStageEmpty,
)

// CompanyStages returns the stage vocabulary plus the empty stage. Fallback: empty.
func CompanyStages() *Vocabulary[CompanyStage] { return companyStages() }

func (s *CompanyStage) UnmarshalJSON(data []byte) error {
	label, err := labelFromJSON(data)
	*s = CompanyStage(label)
	return err
}
