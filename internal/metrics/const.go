package metrics

const Namespace = "tasklist_web"

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

const (
	FlowSignIn        = "sign_in"
	FlowCreateAccount = "create_account"
	FlowFederated     = "federated"
	FlowLogout        = "logout"
)
