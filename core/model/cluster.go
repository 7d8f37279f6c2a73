package model

// Cluster is a deploy target the server is connected to.
type Cluster struct {
	Metadata ObjectMeta    `json:"metadata,omitempty"`
	Spec     ClusterSpec   `json:"spec,omitempty"`
	Status   ClusterStatus `json:"status,omitempty"`
}

// ClusterSpec describes how the server connects to the cluster.
type ClusterSpec struct {
	Connection *ClusterConnection `json:"connection,omitempty"`
}

// ClusterConnection selects a Kubernetes or Docker connection.
type ClusterConnection struct {
	Kubernetes *KubernetesClusterConnection `json:"kubernetes,omitempty"`
	Docker     *DockerClusterConnection     `json:"docker,omitempty"`
}

type KubernetesClusterConnection struct {
	Context   string `json:"context,omitempty"`
	Namespace string `json:"namespace,omitempty"`
}

type DockerClusterConnection struct {
	Host string `json:"host,omitempty"`
}

// ClusterStatus is the observed state of the connection.
type ClusterStatus struct {
	Order       int32  `json:"order,omitempty"`
	Arch        string `json:"arch,omitempty"`
	Error       string `json:"error,omitempty"`
	ConnectedAt string `json:"connectedAt,omitempty"`
	Version     string `json:"version,omitempty"`
}

func (c *Cluster) GetName() string  { return c.Metadata.Name }
func (c *Cluster) OrderHint() int32 { return c.Status.Order }
func (c *Cluster) IsDeleted() bool  { return c.Metadata.DeletionTimestamp != "" }
