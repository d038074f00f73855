package assistant

import "strings"

// cannedResponse selects the reply for a message by scanning the lower-cased
// text for fixed keywords per profile. Unknown profiles and unmatched
// messages fall through to the generic reply.
func cannedResponse(message, profile, attachmentNote string) string {
	lower := strings.ToLower(message)

	switch profile {
	case "comum":
		if strings.Contains(lower, "documento") || strings.Contains(lower, "certidão") {
			return comumDocumentos + attachmentNote
		}
		if strings.Contains(lower, "passo a passo") || strings.Contains(lower, "como regularizar") {
			return comumPassoAPasso + attachmentNote
		}
		if strings.Contains(lower, "profissional") || strings.Contains(lower, "quem procurar") {
			return comumProfissionais + attachmentNote
		}
	case "advogado":
		if strings.Contains(lower, "minuta") || strings.Contains(lower, "contrato") {
			return advogadoMinutas + attachmentNote
		}
		if strings.Contains(lower, "matrícula") || strings.Contains(lower, "análise") {
			return advogadoMatricula + attachmentNote
		}
	case "corretor":
		if strings.Contains(lower, "anúncio") || strings.Contains(lower, "descrição") {
			return corretorAnuncio + attachmentNote
		}
		if strings.Contains(lower, "valoração") || strings.Contains(lower, "preço") || strings.Contains(lower, "valor") {
			return corretorValoracao + attachmentNote
		}
	case "engenheiro":
		if strings.Contains(lower, "art") || strings.Contains(lower, "rrt") {
			return engenheiroART + attachmentNote
		}
		if strings.Contains(lower, "projeto") || strings.Contains(lower, "aprovação") {
			return engenheiroProjeto + attachmentNote
		}
	}

	return "Entendi sua solicitação. " + attachmentNote + `

Como posso ajudar especificamente? Posso:
- Fornecer informações detalhadas
- Gerar documentos e modelos
- Analisar sua situação específica
- Conectar você com profissionais
- Fazer orçamentos

Me conte mais sobre o que você precisa.`
}

const comumDocumentos = `📋 **Documentos necessários para regularização:**

1. **Documentos pessoais:**
   - RG e CPF do proprietário
   - Comprovante de residência
   - Certidão de casamento (se aplicável)

2. **Documentos do imóvel:**
   - Escritura ou contrato de compra e venda
   - IPTU atualizado
   - Certidão de matrícula do imóvel
   - Planta do imóvel (se houver)

3. **Certidões:**
   - Certidão negativa de débitos municipais
   - Certidão de ônus reais
   - Certidão de regularidade do imóvel

Posso ajudar você a entender cada um desses documentos ou orientar sobre como obtê-los.`

const comumPassoAPasso = `🔄 **Passo a passo para regularização:**

**1. Diagnóstico inicial** (onde você está agora)
   - Identificar a situação do imóvel
   - Verificar documentação existente

**2. Levantamento de documentos**
   - Reunir toda documentação necessária
   - Solicitar certidões pendentes

**3. Análise técnica**
   - Contratar topógrafo (se necessário)
   - Fazer vistoria do imóvel

**4. Análise jurídica**
   - Consultar advogado especializado
   - Verificar pendências legais

**5. Regularização na prefeitura**
   - Dar entrada no processo
   - Acompanhar tramitação

**6. Registro em cartório**
   - Atualizar matrícula
   - Finalizar processo

Prazo médio: 3 a 6 meses
Custo estimado: R$ 3.000 a R$ 15.000 (varia por caso)

Em qual etapa você está?`

const comumProfissionais = `👥 **Profissionais que podem ajudar:**

**Advogado especializado em direito imobiliário:**
- Análise de documentação
- Elaboração de contratos
- Representação legal
- Custo médio: R$ 2.000 a R$ 8.000

**Topógrafo/Agrimensor:**
- Levantamento topográfico
- Georreferenciamento
- Plantas e memoriais
- Custo médio: R$ 1.500 a R$ 5.000

**Engenheiro/Arquiteto:**
- Projetos técnicos
- ART/RRT
- Aprovação na prefeitura
- Custo médio: R$ 1.000 a R$ 4.000

**Despachante imobiliário:**
- Tramitação de documentos
- Acompanhamento de processos
- Custo médio: R$ 500 a R$ 2.000

Posso conectar você com profissionais verificados. Qual serviço você precisa?`

const advogadoMinutas = `⚖️ **Minutas jurídicas disponíveis:**

**Contratos:**
- Compra e venda de imóvel
- Promessa de compra e venda
- Cessão de direitos
- Doação
- Permuta
- Integralização de capital social

**Declarações:**
- Declaração de posse
- Declaração de residência
- Declaração de união estável

**Requerimentos:**
- Usucapião
- Retificação de área
- Averbação de construção

Qual minuta você precisa? Posso gerar um modelo personalizado.`

const advogadoMatricula = `🔍 **Análise de matrícula - Checklist:**

**1. Dados do imóvel:**
   - Área correta?
   - Confrontações conferem?
   - Endereço atualizado?

**2. Cadeia dominial:**
   - Sequência de proprietários clara?
   - Todas as transmissões registradas?
   - Há quebra na cadeia?

**3. Ônus e gravames:**
   - Hipotecas ativas?
   - Penhoras?
   - Servidões?
   - Usufrutos?

**4. Indisponibilidades:**
   - Bloqueios judiciais?
   - Restrições administrativas?

**5. Regularidade:**
   - IPTU em dia?
   - Habite-se?
   - Averbação de construção?

Envie a matrícula para análise detalhada.`

const corretorAnuncio = `📢 **Estrutura de anúncio eficaz:**

**Título impactante:**
- Destaque o principal diferencial
- Use números (metragem, quartos)
- Exemplo: "Apartamento 3 quartos com vista mar - 120m²"

**Descrição completa:**
1. Características principais
2. Diferenciais do imóvel
3. Localização e proximidades
4. Estado de conservação
5. Documentação regular

**Informações essenciais:**
- Metragem total e útil
- Número de quartos/banheiros
- Vagas de garagem
- Valor do condomínio/IPTU
- Aceita financiamento?

**Fotos profissionais:**
- Mínimo 10 fotos
- Boa iluminação
- Todos os cômodos

Quer que eu gere uma descrição completa? Me passe os dados do imóvel.`

const corretorValoracao = `💰 **Análise de valoração:**

**Fatores que influenciam o preço:**

**Localização (peso: 40%):**
- Bairro
- Proximidade de serviços
- Segurança
- Infraestrutura

**Características do imóvel (peso: 35%):**
- Metragem
- Número de quartos
- Estado de conservação
- Acabamento

**Documentação (peso: 15%):**
- Regular: +10% a +20%
- Irregular: -20% a -40%

**Mercado (peso: 10%):**
- Oferta e demanda local
- Tendências do bairro

**Para valoração precisa, preciso:**
- Endereço completo
- Metragem
- Características
- Estado de conservação
- Situação documental

Me envie essas informações para análise detalhada.`

const engenheiroART = `📐 **ART/RRT - Orientações:**

**Quando é necessário:**
- Projetos arquitetônicos
- Projetos estruturais
- Projetos de instalações
- Laudos técnicos
- Vistorias
- Execução de obras

**Tipos de ART/RRT:**
- Projeto
- Execução
- Fiscalização
- Consultoria
- Vistoria/Laudo

**Documentação necessária:**
- Registro ativo no CREA/CAU
- Dados do proprietário
- Dados do imóvel
- Descrição dos serviços

**Valores (CREA-SP):**
- Projeto residencial: R$ 150 a R$ 500
- Execução: R$ 200 a R$ 800
- Laudo: R$ 100 a R$ 300

**Prazo de emissão:** Imediato (online)

Precisa de ajuda para preencher a ART/RRT?`

const engenheiroProjeto = `🏗️ **Aprovação de projeto na prefeitura:**

**Documentos necessários:**

**1. Documentação do proprietário:**
   - RG, CPF
   - Comprovante de propriedade
   - IPTU atualizado

**2. Documentação técnica:**
   - Projeto arquitetônico (plantas, cortes, fachadas)
   - Memorial descritivo
   - ART/RRT do responsável técnico
   - Levantamento topográfico

**3. Análises específicas:**
   - Estudo de viabilidade
   - Análise de solo (se necessário)
   - Projeto de fundações (se necessário)

**Etapas do processo:**
1. Protocolo do projeto
2. Análise técnica (30-60 dias)
3. Correções (se necessário)
4. Aprovação e alvará
5. Início da obra

**Custos aproximados:**
- Taxa de aprovação: R$ 500 a R$ 3.000
- Projeto completo: R$ 2.000 a R$ 10.000

Qual tipo de projeto você precisa aprovar?`
