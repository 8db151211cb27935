package entityconfig

import (
	"filings-gateway/internal/entity"
	"filings-gateway/internal/filing"
)

const directorChangeWarning = "Any change to directors must be filed within 15 days of the change."

var registry = map[entity.Type]Config{
	entity.TypeBenefitCompany: {
		DisplayName: "BC Benefit Company",
		Flows: []Flow{
			{
				FeeCode:     filing.CodeAnnualReport,
				DisplayName: "Annual Report",
				CertifyText: "Section 51 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
			{
				FeeCode:     filing.CodeAddressChange,
				DisplayName: "Address Change",
				CertifyText: "Section 35 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
			{
				FeeCode:     filing.CodeDirectorChange,
				DisplayName: "Director Change",
				CertifyText: "Section 127 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
				Warnings:    []string{directorChangeWarning},
			},
			{
				FeeCode:     filing.CodeCorrection,
				DisplayName: "Correction",
				CertifyText: "Section 229 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
			{
				FeeCode:     filing.CodeDissolutionVol,
				DisplayName: "Voluntary Dissolution",
				CertifyText: "Section 316 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
		},
		Obligations:             "A benefit company must file an annual report each year and keep its registered office addresses and director information up to date with the Corporate Registry.",
		DissolutionConfirmation: "Dissolving the business will strike it from the register. The benefit company will cease to exist on the date the dissolution filing is processed.",
		MinDirectors:            1,
	},

	entity.TypeBcCompany: {
		DisplayName: "BC Limited Company",
		Flows: []Flow{
			{
				FeeCode:     filing.CodeAnnualReport,
				DisplayName: "Annual Report",
				CertifyText: "Section 51 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
			{
				FeeCode:     filing.CodeAddressChange,
				DisplayName: "Address Change",
				CertifyText: "Section 35 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
			{
				FeeCode:     filing.CodeDirectorChange,
				DisplayName: "Director Change",
				CertifyText: "Section 127 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
				Warnings:    []string{directorChangeWarning},
			},
			{
				FeeCode:     filing.CodeCorrection,
				DisplayName: "Correction",
				CertifyText: "Section 229 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
			{
				FeeCode:     filing.CodeDissolutionVol,
				DisplayName: "Voluntary Dissolution",
				CertifyText: "Section 316 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
		},
		Obligations:             "A limited company must file an annual report each year and keep its registered office addresses and director information up to date with the Corporate Registry.",
		DissolutionConfirmation: "Dissolving the business will strike it from the register. The company will cease to exist on the date the dissolution filing is processed.",
		MinDirectors:            1,
	},

	entity.TypeBcUlcCompany: {
		DisplayName: "BC Unlimited Liability Company",
		Flows: []Flow{
			{
				FeeCode:     filing.CodeAnnualReport,
				DisplayName: "Annual Report",
				CertifyText: "Section 51 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
			{
				FeeCode:     filing.CodeAddressChange,
				DisplayName: "Address Change",
				CertifyText: "Section 35 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
			{
				FeeCode:     filing.CodeDirectorChange,
				DisplayName: "Director Change",
				CertifyText: "Section 127 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
				Warnings:    []string{directorChangeWarning},
			},
			{
				FeeCode:     filing.CodeDissolutionVol,
				DisplayName: "Voluntary Dissolution",
				CertifyText: "Section 316 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
		},
		Obligations:             "An unlimited liability company must file an annual report each year and keep its registered office addresses and director information up to date with the Corporate Registry.",
		DissolutionConfirmation: "Dissolving the business will strike it from the register. The company will cease to exist on the date the dissolution filing is processed.",
		MinDirectors:            1,
	},

	entity.TypeBcCcc: {
		DisplayName: "BC Community Contribution Company",
		Flows: []Flow{
			{
				FeeCode:     filing.CodeAnnualReport,
				DisplayName: "Annual Report",
				CertifyText: "Section 51 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
			{
				FeeCode:     filing.CodeAddressChange,
				DisplayName: "Address Change",
				CertifyText: "Section 35 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
			{
				FeeCode:     filing.CodeDirectorChange,
				DisplayName: "Director Change",
				CertifyText: "Section 127 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
				Warnings:    []string{directorChangeWarning},
			},
			{
				FeeCode:     filing.CodeDissolutionVol,
				DisplayName: "Voluntary Dissolution",
				CertifyText: "Section 316 of the Business Corporations Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
		},
		Obligations:             "A community contribution company must file an annual report each year and keep its registered office addresses and director information up to date with the Corporate Registry.",
		DissolutionConfirmation: "Dissolving the business will strike it from the register. The company will cease to exist on the date the dissolution filing is processed.",
		MinDirectors:            1,
	},

	entity.TypeCoop: {
		DisplayName: "BC Cooperative Association",
		Flows: []Flow{
			{
				FeeCode:     filing.CodeAnnualReport,
				DisplayName: "Annual Report",
				CertifyText: "Section 126 of the Cooperative Association Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
			{
				FeeCode:     filing.CodeAddressChange,
				DisplayName: "Address Change",
				CertifyText: "Section 27 of the Cooperative Association Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
			{
				FeeCode:     filing.CodeDirectorChange,
				DisplayName: "Director Change",
				CertifyText: "Section 78 of the Cooperative Association Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
				Warnings:    []string{directorChangeWarning},
			},
			{
				FeeCode:     filing.CodeSpecialResolution,
				DisplayName: "Special Resolution",
				CertifyText: "Section 71 of the Cooperative Association Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
			{
				FeeCode:     filing.CodeDissolutionVol,
				DisplayName: "Voluntary Dissolution",
				CertifyText: "Section 197 of the Cooperative Association Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
		},
		Obligations:             "A cooperative association must file an annual report each year, hold an annual general meeting, and keep its registered office addresses and director information up to date with the Corporate Registry.",
		DissolutionConfirmation: "Dissolving the cooperative association will strike it from the register. The association will cease to exist on the date the dissolution filing is processed.",
		MinDirectors:            3,
	},

	entity.TypeSoleProp: {
		DisplayName: "Sole Proprietorship",
		Flows: []Flow{
			{
				FeeCode:     filing.CodeAddressChange,
				DisplayName: "Address Change",
				CertifyText: "Section 90 of the Partnership Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
			{
				FeeCode:     filing.CodeDissolutionVol,
				DisplayName: "Dissolution",
				CertifyText: "Section 90 of the Partnership Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
		},
		Obligations:             "A sole proprietorship must keep its business address and proprietor information up to date with the Corporate Registry.",
		DissolutionConfirmation: "Dissolving the business will remove its registration from the register.",
	},

	entity.TypePartnership: {
		DisplayName: "General Partnership",
		Flows: []Flow{
			{
				FeeCode:     filing.CodeAddressChange,
				DisplayName: "Address Change",
				CertifyText: "Section 90 of the Partnership Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
			{
				FeeCode:     filing.CodeDissolutionVol,
				DisplayName: "Dissolution",
				CertifyText: "Section 90 of the Partnership Act. It is an offence to make a false or misleading statement in respect of a material fact in a record submitted to the Corporate Registry for filing.",
			},
		},
		Obligations:             "A general partnership must keep its business address and partner information up to date with the Corporate Registry.",
		DissolutionConfirmation: "Dissolving the business will remove its registration from the register.",
	},
}
