package domain

import "time"

// School is a registration record, usually imported from the
// registration spreadsheet, occasionally entered by hand. All
// descriptive fields are optional; nil means the sheet cell was empty.
// Presentation layers pick the placeholder for absent values.
type School struct {
	ID   string `json:"id"`
	Code string `json:"code"`

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

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SchoolFilter narrows school listing. Zero values mean "no filter".
type SchoolFilter struct {
	Code      string
	Name      string
	SortByAsc bool
}
