package ui

// settingsCSS styles the settings tab font list.
const settingsCSS = `.google-fonts-settings .form-group label {
	display: flex;
	align-items: center;
	gap: 0.5rem;
	font-weight: 400;
}

.google-fonts-settings input[type="checkbox"] {
	width: auto;
}

.google-fonts-settings .error {
	background: #fef2f2;
	color: var(--danger);
	border: 1px solid var(--danger);
	margin-bottom: 1.5rem;
}
`
