package service

import "github.com/mmynk/tripboard/pkg/api/apiconnect"

// MutationProcedures are the RPCs that need a token once a trip passcode is
// configured. Everything else stays readable without logging in.
var MutationProcedures = []string{
	apiconnect.LedgerServiceAddMemberProcedure,
	apiconnect.LedgerServiceDeleteMemberProcedure,
	apiconnect.LedgerServiceAddExpenseProcedure,
	apiconnect.LedgerServiceDeleteExpenseProcedure,
}
