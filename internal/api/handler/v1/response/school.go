package response

import (
	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/pkg/timefmt"
)

// notProvided is rendered for registration fields the sheet left blank.
const notProvided = "Not Provided"

type School struct {
	ID                     string `json:"id"`
	Code                   string `json:"code"`
	Timestamp              string `json:"timestamp"`
	Name                   string `json:"nameOfSchoolInstitution"`
	Board                  string `json:"boardAffiliatedAndMediumOfInstruction"`
	InstitutionType        string `json:"typeOfInstitutionSchool"`
	Village                string `json:"villageNameIfAny"`
	District               string `json:"district"`
	State                  string `json:"state"`
	FullAddress            string `json:"fullAddressWithPinCode"`
	PrincipalName          string `json:"nameOfPrincipalAndManagement"`
	PrincipalContact       string `json:"contactNumberOfPrincipalManagement"`
	CoordinatorName        string `json:"nameOfCoordinatorForLibrary"`
	CoordinatorContact     string `json:"contactDetailsOfCoordinatorTeacher"`
	HasCupboard            string `json:"isThereCupboardForSafekeeping"`
	HasLibraryRoom         string `json:"isThereRoomForLibrary"`
	LibraryPictures        string `json:"picturesOfLibraryRoomAndCupboard"`
	CupboardPictures       string `json:"cupboardPictures"`
	StudentsBalwadiClass1  string `json:"numberOfStudentsBalwadiClass1"`
	StudentsClass2To4      string `json:"numberOfStudentsClass2To4"`
	StudentsClass5AndAbove string `json:"numberOfStudentsClass5AndAbove"`
	ReferredBy             string `json:"referredBy"`
	CreatedAtIST           string `json:"createdAtIST"`
	UpdatedAtIST           string `json:"updatedAtIST"`
}

func NewSchool(school domain.School) School {
	return School{
		ID:                     school.ID,
		Code:                   school.Code,
		Timestamp:              orPlaceholder(school.Timestamp),
		Name:                   orPlaceholder(school.Name),
		Board:                  orPlaceholder(school.Board),
		InstitutionType:        orPlaceholder(school.InstitutionType),
		Village:                orPlaceholder(school.Village),
		District:               orPlaceholder(school.District),
		State:                  orPlaceholder(school.State),
		FullAddress:            orPlaceholder(school.FullAddress),
		PrincipalName:          orPlaceholder(school.PrincipalName),
		PrincipalContact:       orPlaceholder(school.PrincipalContact),
		CoordinatorName:        orPlaceholder(school.CoordinatorName),
		CoordinatorContact:     orPlaceholder(school.CoordinatorContact),
		HasCupboard:            orPlaceholder(school.HasCupboard),
		HasLibraryRoom:         orPlaceholder(school.HasLibraryRoom),
		LibraryPictures:        orPlaceholder(school.LibraryPictures),
		CupboardPictures:       orPlaceholder(school.CupboardPictures),
		StudentsBalwadiClass1:  orPlaceholder(school.StudentsBalwadiClass1),
		StudentsClass2To4:      orPlaceholder(school.StudentsClass2To4),
		StudentsClass5AndAbove: orPlaceholder(school.StudentsClass5AndAbove),
		ReferredBy:             orPlaceholder(school.ReferredBy),
		CreatedAtIST:           timefmt.IST(school.CreatedAt),
		UpdatedAtIST:           timefmt.IST(school.UpdatedAt),
	}
}

func NewSchools(schools []domain.School) []School {
	views := make([]School, 0, len(schools))
	for _, school := range schools {
		views = append(views, NewSchool(school))
	}

	return views
}

func orPlaceholder(value *string) string {
	if value == nil || *value == "" {
		return notProvided
	}

	return *value
}
