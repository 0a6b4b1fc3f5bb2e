package packages

// packageFields lists only what the package service schema exposes on Package.
const packageFields = `id trackingNumber sender receiver destination status station coordinates { lat lng }`

const (
	getPackagesQuery = `query getPackages {
	getPackages { ` + packageFields + ` }
}`

	getPackageByTrackingNumberQuery = `query GetPackageByTrackingNumber($trackingNumber: String!) {
	getPackageByTrackingNumber(trackingNumber: $trackingNumber) { ` + packageFields + ` }
}`

	createPackageMutation = `mutation createPackage($sender: String!, $receiver: String!, $destination: String!, $userId: String!) {
	createPackage(sender: $sender, receiver: $receiver, destination: $destination, userId: $userId) { ` + packageFields + ` }
}`

	updatePackageStatusMutation = `mutation updatePackageStatus($id: String!, $status: String!) {
	updatePackageStatus(id: $id, status: $status) { ` + packageFields + ` }
}`

	updatePackageStationMutation = `mutation UpdateStation($id: String!, $station: Station!) {
	updatePackageStation(id: $id, station: $station) { ` + packageFields + ` }
}`
)
