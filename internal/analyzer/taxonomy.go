package analyzer

// toolCategory is one fixed technology bucket with its match keywords.
type toolCategory struct {
	name     string
	keywords []string
}

// toolCategories is the fixed taxonomy used for command classification and
// tool usage analysis. Order matters: classification is first-match-wins,
// and summary tie-breaks follow this order.
var toolCategories = []toolCategory{
	{"git", []string{"git", "commit", "push", "pull", "branch", "checkout", "merge"}},
	{"docker", []string{"docker", "run", "build", "ps", "exec", "logs"}},
	{"kubernetes", []string{"kubectl", "k8s", "pod", "service", "deployment"}},
	{"python", []string{"python", "pip", "virtualenv", "conda", "py"}},
	{"node", []string{"node", "npm", "yarn", "npx"}},
	{"system", []string{"sudo", "apt", "brew", "yum", "systemctl"}},
	{"development", []string{"vim", "code", "subl", "nano", "emacs"}},
	{"monitoring", []string{"top", "htop", "ps", "df", "du", "netstat"}},
	{"network", []string{"ssh", "scp", "curl", "wget", "ping", "telnet"}},
	{"database", []string{"mysql", "psql", "sqlite", "mongo", "redis-cli"}},
}

// otherCategory buckets commands matching no taxonomy entry.
const otherCategory = "other"

// workflowRule classifies a joined, lower-cased workflow text by keyword
// containment. Rules are evaluated in order; first match wins.
type workflowRule struct {
	workflowType string
	keywords     []string
}

var workflowRules = []workflowRule{
	{"git_workflow", []string{"git", "commit", "push"}},
	{"docker_workflow", []string{"docker", "build", "run"}},
	{"python_workflow", []string{"python", "pip", "install"}},
	{"node_workflow", []string{"npm", "yarn", "node"}},
	{"file_exploration", []string{"cd", "ls", "find"}},
}

// generalWorkflow is the fallback classification.
const generalWorkflow = "general_workflow"
