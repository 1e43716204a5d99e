package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/toybridge/toybridge-api/internal/domain"
)

// SchoolUpdatePayload mirrors the registration record; every field is
// optional and only provided fields are written.
type SchoolUpdatePayload struct {
	Code                   *string `json:"code"`
	Timestamp              *string `json:"timestamp"`
	Name                   *string `json:"nameOfSchoolInstitution"`
	Board                  *string `json:"boardAffiliatedAndMediumOfInstruction"`
	InstitutionType        *string `json:"typeOfInstitutionSchool"`
	Village                *string `json:"villageNameIfAny"`
	District               *string `json:"district"`
	State                  *string `json:"state"`
	FullAddress            *string `json:"fullAddressWithPinCode"`
	PrincipalName          *string `json:"nameOfPrincipalAndManagement"`
	PrincipalContact       *string `json:"contactNumberOfPrincipalManagement"`
	CoordinatorName        *string `json:"nameOfCoordinatorForLibrary"`
	CoordinatorContact     *string `json:"contactDetailsOfCoordinatorTeacher"`
	HasCupboard            *string `json:"isThereCupboardForSafekeeping"`
	HasLibraryRoom         *string `json:"isThereRoomForLibrary"`
	LibraryPictures        *string `json:"picturesOfLibraryRoomAndCupboard"`
	CupboardPictures       *string `json:"cupboardPictures"`
	StudentsBalwadiClass1  *string `json:"numberOfStudentsBalwadiClass1"`
	StudentsClass2To4      *string `json:"numberOfStudentsClass2To4"`
	StudentsClass5AndAbove *string `json:"numberOfStudentsClass5AndAbove"`
	ReferredBy             *string `json:"referredBy"`
}

type UpdateSchoolRequest struct {
	School SchoolUpdatePayload `json:"school"`
}

func (req *UpdateSchoolRequest) Validate() error {
	if req.School.Code != nil {
		return validation.Validate(*req.School.Code, validation.Required)
	}
	return nil
}

func (req *UpdateSchoolRequest) Apply(school *domain.School) {
	p := req.School
	if p.Code != nil {
		school.Code = *p.Code
	}

	overlay := func(dst **string, src *string) {
		if src != nil {
			*dst = src
		}
	}
	overlay(&school.Timestamp, p.Timestamp)
	overlay(&school.Name, p.Name)
	overlay(&school.Board, p.Board)
	overlay(&school.InstitutionType, p.InstitutionType)
	overlay(&school.Village, p.Village)
	overlay(&school.District, p.District)
	overlay(&school.State, p.State)
	overlay(&school.FullAddress, p.FullAddress)
	overlay(&school.PrincipalName, p.PrincipalName)
	overlay(&school.PrincipalContact, p.PrincipalContact)
	overlay(&school.CoordinatorName, p.CoordinatorName)
	overlay(&school.CoordinatorContact, p.CoordinatorContact)
	overlay(&school.HasCupboard, p.HasCupboard)
	overlay(&school.HasLibraryRoom, p.HasLibraryRoom)
	overlay(&school.LibraryPictures, p.LibraryPictures)
	overlay(&school.CupboardPictures, p.CupboardPictures)
	overlay(&school.StudentsBalwadiClass1, p.StudentsBalwadiClass1)
	overlay(&school.StudentsClass2To4, p.StudentsClass2To4)
	overlay(&school.StudentsClass5AndAbove, p.StudentsClass5AndAbove)
	overlay(&school.ReferredBy, p.ReferredBy)
}
