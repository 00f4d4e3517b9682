package client

const (
	loginMutation = `mutation($email: String!, $password: String!) {
  login(email: $email, password: $password) { token expiresAt user { id email name role } }
}`

	membersQuery = `query($search: String, $limit: Int, $offset: Int) {
  members(search: $search, limit: $limit, offset: $offset) { id name email role status title }
}`
	createMemberMutation = `mutation($input: MemberInput!) {
  createMember(input: $input) { id name email role status title }
}`
	deleteMemberMutation = `mutation($id: ID!) { deleteMember(id: $id) }`

	projectsQuery = `query($search: String, $limit: Int, $offset: Int) {
  projects(search: $search, limit: $limit, offset: $offset) { id title status startDate endDate budget spent remaining }
}`
	createProjectMutation = `mutation($input: ProjectInput!) {
  createProject(input: $input) { id title status startDate endDate budget spent remaining }
}`
	projectBudgetQuery = `query($id: ID!) { project(id: $id) { id title budget spent remaining } }`

	grantsQuery = `query($search: String, $limit: Int, $offset: Int) {
  grants(search: $search, limit: $limit, offset: $offset) { id title agency status budget spent remaining }
}`
	grantBudgetQuery = `query($id: ID!) { grant(id: $id) { id title budget spent remaining } }`

	equipmentFields = `id name serialNumber location status member { id name } project { id title }`
	equipmentQuery  = `query($search: String, $limit: Int, $offset: Int) {
  equipmentList(search: $search, limit: $limit, offset: $offset) { ` + equipmentFields + ` }
}`
	createEquipmentMutation = `mutation($input: EquipmentInput!) { createEquipment(input: $input) { ` + equipmentFields + ` } }`
	assignEquipmentMutation = `mutation($id: ID!, $memberId: ID, $projectId: ID) {
  assignEquipment(id: $id, memberId: $memberId, projectId: $projectId) { ` + equipmentFields + ` }
}`
	releaseEquipmentMutation     = `mutation($id: ID!) { releaseEquipment(id: $id) { ` + equipmentFields + ` } }`
	equipmentMaintenanceMutation = `mutation($id: ID!, $maintenance: Boolean!) {
  setEquipmentMaintenance(id: $id, maintenance: $maintenance) { ` + equipmentFields + ` }
}`
)
